package domain

import (
	"fmt"
	"strconv"
)

// PadWidth returns the zero-pad width for a sequence of count pages: the
// number of base-10 digits in count. 9 pages pad to 1 digit, 10 to 2, 100
// to 3.
func PadWidth(count int) int {
	return len(strconv.Itoa(count))
}

// PageFileName builds the final name for page number num (1-based) padded to
// width digits, with the detected extension appended when one was recorded.
func PageFileName(num, width int, ext string) string {
	if ext == "" {
		return fmt.Sprintf("%0*d", width, num)
	}
	return fmt.Sprintf("%0*d.%s", width, num, ext)
}
