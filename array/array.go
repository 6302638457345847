package array

// Helpers for the pixel buffer types used in the conversion pipeline:
// []uint8 binary buffers and []float64 intensity buffers.

func AllEquals(buffer interface{}, value interface{}) bool {
	switch typedBuffer := buffer.(type) {
	case []uint8:
		typedValue := value.(uint8)
		for i := 0; i < len(typedBuffer); i++ {
			if typedBuffer[i] != typedValue {
				return false
			}
		}
		return true
	case []float64:
		typedValue := value.(float64)
		for i := 0; i < len(typedBuffer); i++ {
			if typedBuffer[i] != typedValue {
				return false
			}
		}
		return true
	default:
		panic("other data types not yet supported for AllEquals()")
	}
}

// Return true if every value in buffer is one of values.
// Used to verify the binary (0/255) contract on dithered buffers.
func AllIn(buffer []uint8, values ...uint8) bool {
	for i := 0; i < len(buffer); i++ {
		found := false
		for _, v := range values {
			if buffer[i] == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Return true if the two arrays have equal values
// will fail if arrays do not have same type
func Equals(left interface{}, right interface{}) bool {
	switch leftBuffer := left.(type) {
	case []uint8:
		rightBuffer := right.([]uint8)
		if len(leftBuffer) != len(rightBuffer) {
			return false
		}
		for i := 0; i < len(leftBuffer); i++ {
			if leftBuffer[i] != rightBuffer[i] {
				return false
			}
		}
		return true
	case []float64:
		rightBuffer := right.([]float64)
		if len(leftBuffer) != len(rightBuffer) {
			return false
		}
		for i := 0; i < len(leftBuffer); i++ {
			if leftBuffer[i] != rightBuffer[i] {
				return false
			}
		}
		return true
	default:
		panic("other data types not yet supported for Equals()")
	}
}

func Fill(buffer interface{}, value interface{}) {
	switch typedBuffer := buffer.(type) {
	case []uint8:
		typedValue := value.(uint8)
		for i := 0; i < len(typedBuffer); i++ {
			typedBuffer[i] = typedValue
		}
	case []float64:
		typedValue := value.(float64)
		for i := 0; i < len(typedBuffer); i++ {
			typedBuffer[i] = typedValue
		}
	default:
		panic("other data types not yet supported for Fill()")
	}
}

// Mean returns the average of all values in buffer, 0 for an empty buffer.
func Mean(buffer interface{}) float64 {
	var sum float64
	var n int
	switch typedBuffer := buffer.(type) {
	case []uint8:
		n = len(typedBuffer)
		for i := 0; i < n; i++ {
			sum += float64(typedBuffer[i])
		}
	case []float64:
		n = len(typedBuffer)
		for i := 0; i < n; i++ {
			sum += typedBuffer[i]
		}
	default:
		panic("other data types not yet supported for Mean()")
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
