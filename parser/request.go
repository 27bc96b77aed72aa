package parser

// CommandDivider is a bufio.SplitFunc that divides the inbound stream
// into ';' terminated commands.
func CommandDivider(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Return nothing if at end of file and no data passed
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	for i, b := range data {
		if b == ';' {
			return i + 1, data[0 : i+1], nil
		}
	}

	// If at end of file with data return the data
	if atEOF {
		data = append(data, ';')
		return len(data), data, nil
	}

	return
}
