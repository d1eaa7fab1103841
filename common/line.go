package common

import (
	"bufio"
	"bytes"
)

// ReadLine reads through the next '\n' and returns the line without its
// trailing "\r\n". A line longer than max bytes is consumed and dropped, and
// reported with tooLong set, so the reader stays aligned on the next line.
// At end of input err is io.EOF; a final unterminated line is still returned.
func ReadLine(rd *bufio.Reader, max int) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := rd.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimRight(line, "\r\n")) > max {
				tooLong = true
				line = nil
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return bytes.TrimRight(line, "\r\n"), tooLong, err
	}
}
