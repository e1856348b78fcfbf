package commands

func getPlatform() *Platform {
	return &Platform{
		os: "windows",
	}
}
