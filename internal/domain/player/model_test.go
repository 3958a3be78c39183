package player

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"GK", PositionGoalkeeper, false},
		{"fw", PositionForward, false},
		{" Mf ", PositionMidfielder, false},
		{"df", PositionDefender, false},
		{"ST", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParsePosition(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePosition(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeyNormalizes(t *testing.T) {
	if Key("  Erling Haaland ") != "erling haaland" {
		t.Fatal("key must trim and lower")
	}

	p := Player{Name: "Son Heung-min"}
	if p.Key() != "son heung-min" {
		t.Fatalf("unexpected key %q", p.Key())
	}
}

func TestPlayerValidate(t *testing.T) {
	valid := Player{Name: "Bukayo Saka", Team: "Arsenal", Position: PositionMidfielder, ProjectedPoints: 240, Tier: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Player)
	}{
		{"empty name", func(p *Player) { p.Name = " " }},
		{"empty team", func(p *Player) { p.Team = "" }},
		{"bad position", func(p *Player) { p.Position = "ST" }},
		{"negative projection", func(p *Player) { p.ProjectedPoints = -1 }},
		{"zero tier", func(p *Player) { p.Tier = 0 }},
	}
	for _, tt := range tests {
		p := valid
		tt.mutate(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}
