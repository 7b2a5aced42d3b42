package game

import "strconv"

// Content is the generation-time classification of a cell: either a mine or
// the number of mines among its neighbours.
type Content int8

const Mine Content = mineValue

func SafeCount(n int) Content {
	if n < 0 || n > maxSafeCount {
		panic("game: safe count out of range: " + strconv.Itoa(n))
	}
	return Content(n)
}

func (content Content) IsMine() bool {
	return content == Mine
}

// Count returns the adjacent mine count, or -1 for a mine.
func (content Content) Count() int {
	return int(content)
}

func (content Content) String() string {
	if content.IsMine() {
		return "mine"
	}
	return strconv.Itoa(int(content))
}
