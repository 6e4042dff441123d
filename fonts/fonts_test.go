package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Small} {
		if name.Get() == nil {
			t.Errorf("%s.Get() = nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("LoadFontWithSize() with garbage = nil error, want error")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() of unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}
