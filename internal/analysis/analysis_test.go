package analysis

import (
	"bytes"
	"testing"
)

func TestData_PackUnpack(t *testing.T) {
	statuses := []Status{
		Unfixed, Lost, LostStalemate, Won, WonStalemate, Transformed, Contradictory,
	}
	for _, status := range statuses {
		for turn := Turn(0); turn <= MaxTurn; turn++ {
			for _, flag := range []bool{false, true} {
				d := NewData(flag, turn, status)
				if got := d.Status(); got != status {
					t.Fatalf("NewData(%v, %d, %v).Status() = %v", flag, turn, status, got)
				}
				if got := d.Turn(); got != turn {
					t.Fatalf("NewData(%v, %d, %v).Turn() = %d", flag, turn, status, got)
				}
				if got := d.UpdateFlag(); got != flag {
					t.Fatalf("NewData(%v, %d, %v).UpdateFlag() = %v", flag, turn, status, got)
				}
			}
		}
	}
}

func TestData_WithTurn(t *testing.T) {
	d := NewData(true, 3, Won)
	d = d.WithTurn(9)
	if got := d.Turn(); got != 9 {
		t.Errorf("Turn() = %d, want 9", got)
	}
	if got := d.Status(); got != Won {
		t.Errorf("Status() = %v, want Won", got)
	}
	if !d.UpdateFlag() {
		t.Error("UpdateFlag() = false, want true")
	}
}

func TestData_WithUpdateFlag(t *testing.T) {
	d := NewData(false, 7, Lost)
	d = d.WithUpdateFlag(true)
	if !d.UpdateFlag() {
		t.Fatal("UpdateFlag() = false after setting")
	}
	d = d.WithUpdateFlag(false)
	if d.UpdateFlag() {
		t.Fatal("UpdateFlag() = true after clearing")
	}
	if d.Turn() != 7 || d.Status() != Lost {
		t.Errorf("flag toggling disturbed the cell: turn %d status %v", d.Turn(), d.Status())
	}
}

func TestSaturatingNextTurn(t *testing.T) {
	if got := SaturatingNextTurn(0); got != 1 {
		t.Errorf("SaturatingNextTurn(0) = %d, want 1", got)
	}
	if got := SaturatingNextTurn(MaxTurn - 1); got != MaxTurn {
		t.Errorf("SaturatingNextTurn(MaxTurn-1) = %d, want MaxTurn", got)
	}
	if got := SaturatingNextTurn(MaxTurn); got != MaxTurn {
		t.Errorf("SaturatingNextTurn(MaxTurn) = %d, want MaxTurn", got)
	}
}

func TestStatus_Invert(t *testing.T) {
	tests := []struct {
		status, want Status
	}{
		{Unfixed, Unfixed},
		{Lost, Won},
		{Won, Lost},
		{LostStalemate, WonStalemate},
		{WonStalemate, LostStalemate},
		{Transformed, StatusInvalid},
		{Contradictory, StatusInvalid},
		{StatusInvalid, StatusInvalid},
	}
	for _, tt := range tests {
		if got := tt.status.Invert(); got != tt.want {
			t.Errorf("%v.Invert() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatistics_Add(t *testing.T) {
	stats := Statistics{Unfixed: 100}
	stats.Add(Statistics{Lost: 3, Won: 5})

	if got := stats.Unfixed; got != 92 {
		t.Errorf("Unfixed = %d, want 92", got)
	}
	if got := stats.Lost; got != 3 {
		t.Errorf("Lost = %d, want 3", got)
	}
	if got := stats.Won; got != 5 {
		t.Errorf("Won = %d, want 5", got)
	}
	if got := stats.Total(); got != 100 {
		t.Errorf("Total() = %d, want 100", got)
	}
}

func TestStatistics_Clear(t *testing.T) {
	stats := Statistics{Lost: 1, Won: 2, Unfixed: 3}
	stats.Clear()
	if stats != (Statistics{}) {
		t.Errorf("Clear() left %+v", stats)
	}
}

func TestStatistics_BinaryRoundTrip(t *testing.T) {
	stats := Statistics{
		Lost:          1,
		LostStalemate: 2,
		Won:           3,
		Transformed:   4,
		Contradictory: 5,
		Unfixed:       6,
	}

	data, err := stats.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != StatisticsSize {
		t.Fatalf("encoded size = %d, want %d", len(data), StatisticsSize)
	}

	var decoded Statistics
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if decoded != stats {
		t.Errorf("round trip = %+v, want %+v", decoded, stats)
	}
}

func TestStatistics_UnmarshalShort(t *testing.T) {
	var stats Statistics
	if err := stats.UnmarshalBinary(bytes.Repeat([]byte{0}, StatisticsSize-1)); err != ErrShortStatistics {
		t.Errorf("UnmarshalBinary(short) error = %v, want ErrShortStatistics", err)
	}
}
