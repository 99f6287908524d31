package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := ValidateScores(DefaultScores()); err != nil {
		t.Fatalf("default scores invalid: %v", err)
	}
	if err := ValidateMaturity(DefaultMaturity()); err != nil {
		t.Fatalf("default maturity invalid: %v", err)
	}
	if got := DefaultScores()["Delivery Mode"]; got != 50 {
		t.Fatalf("default axis score = %d, want 50", got)
	}
	if got := DefaultMaturity()["Skills"]; got != 3 {
		t.Fatalf("default theme score = %d, want 3", got)
	}
}

func TestValidateScores(t *testing.T) {
	t.Run("missing_axis", func(t *testing.T) {
		s := DefaultScores()
		delete(s, "Ambition")
		err := ValidateScores(s)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown_axis", func(t *testing.T) {
		s := DefaultScores()
		s["Velocity"] = 10
		err := ValidateScores(s)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("value_out_of_range", func(t *testing.T) {
		s := DefaultScores()
		s["Ambition"] = 101
		if err := ValidateScores(s); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		s["Ambition"] = -1
		if err := ValidateScores(s); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("boundaries_ok", func(t *testing.T) {
		s := DefaultScores()
		s["Ambition"] = 0
		s["Coverage"] = 100
		if err := ValidateScores(s); err != nil {
			t.Fatalf("boundary values should validate: %v", err)
		}
	})
}

func TestValidateMaturity(t *testing.T) {
	m := DefaultMaturity()
	m["Tools"] = 6
	if err := ValidateMaturity(m); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	m["Tools"] = 0
	if err := ValidateMaturity(m); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadScores(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "target.yaml")
		content := "" +
			"Abstraction Level: 50\n" +
			"Adaptability: 50\n" +
			"Ambition: 70\n" +
			"Coverage: 50\n" +
			"Governance Structure: 20\n" +
			"Orientation: 50\n" +
			"Motivation: 50\n" +
			"Access Philosophy: 50\n" +
			"Delivery Mode: 90\n" +
			"Decision Model: 50\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		s, err := LoadScores(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if s["Delivery Mode"] != 90 || s["Governance Structure"] != 20 {
			t.Fatalf("unexpected scores: %v", s)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "maturity.json")
		content := `{"Uses":1,"Data":2,"Leadership":3,"Culture":4,"Tools":5,"Skills":3}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		m, err := LoadMaturity(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if m["Culture"] != 4 {
			t.Fatalf("unexpected maturity: %v", m)
		}
	})

	t.Run("invalid_shape", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(path, []byte("Ambition: 70\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadScores(path); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		if _, err := LoadScores(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Fatal("expected read error")
		}
	})
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 100) != 0 || Clamp(140, 0, 100) != 100 || Clamp(55, 0, 100) != 55 {
		t.Fatal("clamp wrong")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	scores := DefaultScores()
	scores["Ambition"] = 85
	scoresPath := filepath.Join(dir, "scores.json")
	if err := SaveScores(scoresPath, scores); err != nil {
		t.Fatalf("SaveScores: %v", err)
	}
	loaded, err := LoadScores(scoresPath)
	if err != nil {
		t.Fatalf("LoadScores: %v", err)
	}
	if loaded["Ambition"] != 85 {
		t.Fatalf("round trip lost value: %v", loaded)
	}

	maturity := DefaultMaturity()
	maturity["Skills"] = 5
	maturityPath := filepath.Join(dir, "maturity.json")
	if err := SaveMaturity(maturityPath, maturity); err != nil {
		t.Fatalf("SaveMaturity: %v", err)
	}
	loadedM, err := LoadMaturity(maturityPath)
	if err != nil {
		t.Fatalf("LoadMaturity: %v", err)
	}
	if loadedM["Skills"] != 5 {
		t.Fatalf("round trip lost value: %v", loadedM)
	}
}

func TestSaveRejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := SaveScores(path, Scores{"Nonsense": 10}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Fatalf("invalid profile should not be written")
	}
}
