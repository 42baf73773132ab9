package alphabet

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/EMarquer/phono/internal/tracing"
)

// Languages with built-in classification tables. The first language is
// used as fallback.
var builtinLangs = []language.Tag{
	language.French,
}

var langMatch = language.NewMatcher(builtinLangs)

// ForLanguage returns the built-in text and phonetic table sets for a
// language. Languages without built-in tables fall back to French, the
// only built-in today.
func ForLanguage(lang language.Tag) (text, phon *Set) {
	tag, _, confidence := langMatch.Match(lang)
	tracing.P("lang", lang).Debugf("matched built-in tables %v with confidence %v", tag, confidence)
	return French(), FrenchPhonetic()
}

// FromEnvironment detects the user locale and returns built-in table sets
// for it (see ForLanguage). An undetectable locale falls back to French.
func FromEnvironment() (text, phon *Set) {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracing.Errorf(err.Error())
		userLocale = "fr-FR"
		tracing.Infof("alphabet sets default user locale %v", userLocale)
	} else {
		tracing.Infof("alphabet detected user locale %v", userLocale)
	}
	return ForLanguage(language.Make(userLocale))
}
