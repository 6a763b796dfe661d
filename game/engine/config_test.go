package engine

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		valid  bool
	}{
		{"classic connect four", Config{Columns: 7, Rows: 6, WinLength: 4}, true},
		{"minimal board", Config{Columns: 1, Rows: 1, WinLength: 1}, true},
		{"run fits width only", Config{Columns: 5, Rows: 1, WinLength: 5}, true},
		{"run fits height only", Config{Columns: 1, Rows: 5, WinLength: 5}, true},
		{"run longer than both axes", Config{Columns: 3, Rows: 2, WinLength: 4}, false},
		{"zero columns", Config{Columns: 0, Rows: 5, WinLength: 3}, false},
		{"zero rows", Config{Columns: 5, Rows: 0, WinLength: 3}, false},
		{"zero win length", Config{Columns: 5, Rows: 5, WinLength: 0}, false},
		{"negative dimension", Config{Columns: -1, Rows: 5, WinLength: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected invalid config error")
				}
				if FailureOf(err) != FailureInvalidConfig {
					t.Errorf("expected FailureInvalidConfig, got %v", FailureOf(err))
				}
			}
		})
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	_, err := NewGame(Config{Columns: 3, Rows: 2, WinLength: 4}, []int{1, 2, 3})
	if err == nil {
		t.Fatal("expected config rejection before simulation")
	}
	if FailureOf(err) != FailureInvalidConfig {
		t.Errorf("expected FailureInvalidConfig, got %v", FailureOf(err))
	}
}
