package syllable_test

import (
	"fmt"

	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/syllable"
)

func ExampleSyllabifier_Syllabify() {
	syll := syllable.New(alphabet.FrenchPhonetic())
	phon, pattern := syll.Syllabify("pomiE", "")
	fmt.Println(phon, pattern)
	// Output: po-mi-E CV-CV-V
}

func ExampleScanner() {
	syll := syllable.New(alphabet.FrenchPhonetic())
	cs, err := syll.Segment("eʁetik", "VCVCVC")
	if err != nil {
		fmt.Println(err)
		return
	}
	scanner := syllable.NewScanner(cs)
	for scanner.Next() {
		fmt.Println(scanner.Syllable())
	}
	// Output:
	// [e|V]
	// [ʁe|CV]
	// [tik|CVC]
}
