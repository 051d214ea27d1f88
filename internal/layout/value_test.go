package layout

import "testing"

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"fixed ignores available": {value: Fixed(50), available: 100, fallback: 0, expected: 50},
		"fixed negative":          {value: Fixed(-10), available: 100, fallback: 50, expected: -10},
		"percent half":            {value: Percent(50), available: 100, fallback: 0, expected: 50},
		"percent rounds down":     {value: Percent(50), available: 9, fallback: 0, expected: 4},
		"percent of zero":         {value: Percent(75), available: 0, fallback: 3, expected: 0},
		"auto uses fallback":      {value: Auto(), available: 100, fallback: 7, expected: 7},
		"zero value is auto":      {value: Value{}, available: 100, fallback: 9, expected: 9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.available, tt.fallback); got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d", tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	type tc struct {
		input   string
		want    Value
		wantErr bool
	}

	tests := map[string]tc{
		"empty is auto":     {input: "", want: Auto()},
		"auto":              {input: "auto", want: Auto()},
		"cells":             {input: "12", want: Fixed(12)},
		"negative cells":    {input: "-3", want: Fixed(-3)},
		"percent":           {input: "50%", want: Percent(50)},
		"fractional":        {input: "33.5%", want: Percent(33.5)},
		"surrounding space": {input: " 7 ", want: Fixed(7)},
		"garbage":           {input: "wide", wantErr: true},
		"bad percent":       {input: "x%", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if back, _ := ParseValue(got.String()); back != got {
				t.Errorf("ParseValue(%q.String()) = %+v", got, back)
			}
		})
	}
}

func TestParseSpacing(t *testing.T) {
	type tc struct {
		input   string
		want    Edges
		wantErr bool
	}

	tests := map[string]tc{
		"one value":       {input: "2", want: EdgeAll(2)},
		"two values":      {input: "1 3", want: EdgeSymmetric(1, 3)},
		"three values":    {input: "1 2 3", want: EdgeTRBL(1, 2, 3, 2)},
		"four values":     {input: "1 2 3 4", want: EdgeTRBL(1, 2, 3, 4)},
		"token":           {input: "md", want: EdgeAll(2)},
		"mixed":           {input: "sm lg", want: EdgeSymmetric(1, 3)},
		"all tokens":      {input: "none xs xl 2xl", want: EdgeTRBL(0, 1, 4, 6)},
		"negative":        {input: "-1 0", want: EdgeSymmetric(-1, 0)},
		"extra spaces":    {input: "  1   2 ", want: EdgeSymmetric(1, 2)},
		"unknown token":   {input: "huge", wantErr: true},
		"too many values": {input: "1 2 3 4 5", wantErr: true},
		"empty":           {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSpacing(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSpacing(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpacing(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSpacing(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlap":         {a: NewRect(0, 0, 10, 10), b: NewRect(5, 5, 10, 10), want: NewRect(5, 5, 5, 5)},
		"contained":       {a: NewRect(0, 0, 10, 10), b: NewRect(2, 3, 4, 5), want: NewRect(2, 3, 4, 5)},
		"touching edges":  {a: NewRect(0, 0, 5, 5), b: NewRect(5, 0, 5, 5), want: Rect{}},
		"negative origin": {a: NewRect(-4, -4, 6, 6), b: NewRect(0, 0, 10, 10), want: NewRect(0, 0, 2, 2)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_InsetNeverNegative(t *testing.T) {
	r := NewRect(0, 0, 3, 2).Inset(EdgeAll(2))
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("Inset() = %+v, want zero size", r)
	}
	if r.X != 2 || r.Y != 2 {
		t.Errorf("Inset() origin = (%d, %d), want (2, 2)", r.X, r.Y)
	}
}
