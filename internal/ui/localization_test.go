package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyFile); got != "Файл" {
		t.Errorf("Expected Russian text, got %q", got)
	}
	if got := l.GetText(KeyTagLabelWidth); got != "Tag Label Width" {
		t.Errorf("Expected English fallback, got %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected the key back, got %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected unknown languages to be ignored, got %q", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to en, got %q", l.GetCurrentLanguage())
	}
}

func TestLocalizationCoversEnglish(t *testing.T) {
	l := NewLocalization()
	for lang, texts := range l.texts {
		for key := range texts {
			if _, ok := l.texts["en"][key]; !ok {
				t.Errorf("Key %q of %s has no English text", key, lang)
			}
		}
	}
}
