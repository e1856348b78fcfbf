package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/christophe-duc/lazycache/pkg/i18n"
	"github.com/samber/lo"
)

// prints the strings each language still needs translating. Pass --check to
// exit non-zero when any are outstanding
func main() {
	missing := i18n.MissingTranslations()

	languageCodes := lo.Keys(missing)
	sort.Strings(languageCodes)

	outstanding := 0
	for _, languageCode := range languageCodes {
		fmt.Printf("%s:\n%s\n\n", languageCode, strings.Join(missing[languageCode], "\n"))
		outstanding += len(missing[languageCode])
	}

	if len(os.Args) > 1 && os.Args[1] == "--check" && outstanding > 0 {
		os.Exit(1)
	}
}
