package domain

import "testing"

func TestEnums_Valid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"BUY", OrderType("BUY").Valid()},
		{"SELL", OrderType("SELL").Valid()},
		{"MARKET", OrderStyle("MARKET").Valid()},
		{"LIMIT", OrderStyle("LIMIT").Valid()},
		{"NEW", OrderStatus("NEW").Valid()},
		{"PLACED", OrderStatus("PLACED").Valid()},
		{"EXECUTED", OrderStatus("EXECUTED").Valid()},
		{"CANCELLED", OrderStatus("CANCELLED").Valid()},
		{"EQUITY", InstrumentType("EQUITY").Valid()},
		{"FUTURES", InstrumentType("FUTURES").Valid()},
		{"OPTIONS", InstrumentType("OPTIONS").Valid()},
		{"NSE", Exchange("NSE").Valid()},
		{"BSE", Exchange("BSE").Valid()},
	}
	for _, tt := range tests {
		if !tt.valid {
			t.Errorf("%s should be valid", tt.name)
		}
	}

	invalid := []bool{
		OrderType("buy").Valid(),
		OrderType("").Valid(),
		OrderStyle("STOP").Valid(),
		OrderStatus("FILLED").Valid(),
		InstrumentType("BOND").Valid(),
		Exchange("NYSE").Valid(),
	}
	for i, v := range invalid {
		if v {
			t.Errorf("invalid case %d reported valid", i)
		}
	}
}
