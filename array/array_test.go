package array

import (
	"testing"
)

func TestAllEquals(t *testing.T) {
	size := 4
	var fill uint8 = 0
	array := make([]uint8, size)
	for i := 0; i < size; i++ {
		array[i] = fill
	}

	if !AllEquals(array, fill) {
		t.Errorf("AllEquals() returned false when should have returned true")
	}

	var value uint8 = 2
	if AllEquals(array, value) {
		t.Errorf("AllEquals() returned true when should have returned false")
	}
}

func TestAllEqualsFloat64(t *testing.T) {
	array := make([]float64, 4)
	Fill(array, 127.5)

	if !AllEquals(array, 127.5) {
		t.Errorf("AllEquals() returned false when should have returned true")
	}
	if AllEquals(array, 128.0) {
		t.Errorf("AllEquals() returned true when should have returned false")
	}
}

func TestAllIn(t *testing.T) {
	binary := []uint8{0, 255, 255, 0, 255}
	if !AllIn(binary, 0, 255) {
		t.Errorf("AllIn() returned false for a binary buffer")
	}

	binary[2] = 128
	if AllIn(binary, 0, 255) {
		t.Errorf("AllIn() returned true for a non-binary buffer")
	}
}

func TestEquals(t *testing.T) {
	var i uint8
	var size uint8 = 4
	var fill uint8 = 0
	left := make([]uint8, int(size))
	for i = 0; i < size; i++ {
		left[i] = fill
	}

	right := make([]uint8, int(size))
	for i = 0; i < size; i++ {
		right[i] = i
	}

	if !Equals(left, left) {
		t.Errorf("Equals() returned false when should have returned true")
	}

	if Equals(left, right) {
		t.Errorf("Equals() returned true when should have returned false")
	}
}

func TestEqualsFloat64(t *testing.T) {
	left := []float64{0, 127.5, 255}
	right := []float64{0, 127.5, 254}

	if !Equals(left, left) {
		t.Errorf("Equals() returned false when should have returned true")
	}
	if Equals(left, right) {
		t.Errorf("Equals() returned true when should have returned false")
	}
	if Equals(left, right[:2]) {
		t.Errorf("Equals() returned true for buffers of different length")
	}
}

func TestFill(t *testing.T) {
	var fill uint8 = 2
	target := make([]uint8, 8)
	Fill(target, fill)

	if !AllEquals(target, fill) {
		t.Errorf("Fill() did not set all values as expected")
	}

	fill = 4
	Fill(target, fill)
	if !AllEquals(target, fill) {
		t.Errorf("Fill() did not set all values as expected")
	}
}

func TestMean(t *testing.T) {
	if mean := Mean([]uint8{0, 255}); mean != 127.5 {
		t.Errorf("Mean(): %v does not match expected value 127.5", mean)
	}
	if mean := Mean([]float64{100, 200}); mean != 150 {
		t.Errorf("Mean(): %v does not match expected value 150", mean)
	}
	if mean := Mean([]uint8{}); mean != 0 {
		t.Errorf("Mean() of empty buffer: %v, expected 0", mean)
	}
}
