package parser

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"  \n\n  \n",
		"; just a comment\n",
		"# hash comment\n",
		"comment\nanything goes\nend comment\n",
		"account assets:cash\n",
		"account assets:cash  ; savings\n",
		"commodity $1,000.00\n",
		"decimal-mark ,\n",
		"include other.journal\n",
		"apply account home\nend apply account\n",
		"2024-01-01 opening balance\n  assets:cash  $100\n  equity\n",
		"2024-01-01 x ; memo\n  a  10 EUR @@ $11  ; fx\n  b\n",
		"~ monthly  budget\n  expenses  $500\n  assets\n",
		"= expr\n  (a)  *0.5\n",
		"2024-01-01 x\n  a  1 AAAA = 2 AAAA @ $3\n",
		"2024-01-01 x\r\n  a  $1\r\n",
		"Y2024\n",
		"\xff\xfe",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		file, err := Parse("fuzz.journal", data)
		if err != nil {
			if file != nil {
				t.Errorf("Parse returned a file alongside an error on %q", data)
			}
			return
		}
		if file == nil {
			t.Errorf("Parse returned a nil file with a nil error on %q", data)
		}
	})
}
