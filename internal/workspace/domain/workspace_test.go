package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidate_NameRequired(t *testing.T) {
	w := Workspace{}
	if err := w.Validate(); err == nil {
		t.Fatal("Validate should fail for empty name")
	}
}

func TestValidate_NameLengthCountsRunes(t *testing.T) {
	ok := Workspace{Name: strings.Repeat("ü", MaxNameLen)}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate(%d runes): %v", MaxNameLen, err)
	}
	tooLong := Workspace{Name: strings.Repeat("ü", MaxNameLen+1)}
	if err := tooLong.Validate(); err == nil {
		t.Errorf("Validate should fail for %d runes", MaxNameLen+1)
	}
}

func TestValidate_DefaultsStatus(t *testing.T) {
	w := Workspace{Name: "ok"}
	if err := w.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if w.Status != WorkspaceStatusActive {
		t.Errorf("status = %q, want active default", w.Status)
	}
}

func TestCustomConfig_JSONShape(t *testing.T) {
	cfg := CustomConfig{RemoveWebappBrand: true, ReplaceWebappLogo: "assets/logo.png"}
	b, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"remove_webapp_brand":true,"replace_webapp_logo":"assets/logo.png"}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}

	// Empty logo is omitted so stored configs stay minimal.
	b, err = json.Marshal(CustomConfig{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"remove_webapp_brand":false}` {
		t.Errorf("json = %s", b)
	}
}
