package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		ResettingCacheDirs:     "resetowanie katalogów pamięci podręcznej",
		CreatingCacheImage:     "tworzenie obrazu pamięci podręcznej",
		CacheImageCreated:      "utworzono obraz pamięci podręcznej",
		CheckingCacheImage:     "sprawdzanie obrazu pamięci podręcznej",
		NoCacheDirectories:     "brak skonfigurowanych katalogów, nie ma czego generować",
		NoFileServerConfigured: "brak skonfigurowanego serwera plików",

		FailedToResetCacheDirs:   "Nie udało się zresetować katalogów pamięci podręcznej",
		FailedToCreateCacheImage: "Nie udało się utworzyć obrazu pamięci podręcznej",
		FailedToCheckCacheImage:  "Nie udało się sprawdzić, czy obraz pamięci podręcznej istnieje",
		FailedToLoadConfig:       "Nie udało się wczytać konfiguracji",

		ImageExists:       "obraz istnieje",
		ImageDoesNotExist: "obraz nie istnieje",

		No:  "nie",
		Yes: "tak",
	}
}
