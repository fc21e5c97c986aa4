package usecase

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = "Space"
	KeyEnter      = "Enter"
	KeyUndo       = "KeyU"
	KeyPause      = "KeyP"
	KeyResetTimer = "KeyR"
	KeyEscape     = "Escape"
)

const gridSide = 3

// pressKey drives the board from the keyboard. Unknown keys, and keys other
// than undo, pause and timer reset while no match is running, are ignored.
func (that *Session) pressKey(code string) (Change, error) {
	switch code {
	case KeyUndo:
		if !that.Match.CanUndo() {
			return Change{event: EventKeyIgnored}, nil
		}
		that.KeyboardMode = true
		return that.undo()
	case KeyPause:
		that.KeyboardMode = true
		return that.togglePause(), nil
	case KeyResetTimer:
		that.KeyboardMode = true
		return that.resetTimer(), nil
	}

	if !that.Match.IsInProgress() {
		return Change{event: EventKeyIgnored}, nil
	}

	switch code {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		that.KeyboardMode = true
		that.Focus = moveFocus(that.Focus, code)
		return Change{event: EventFocusMoved}, nil
	case KeySpace, KeyEnter:
		that.KeyboardMode = true
		if that.Match.Board[that.Focus] != entity.EmptyCell {
			return Change{event: EventKeyIgnored}, nil
		}
		return that.clickCell(that.Focus)
	case KeyEscape:
		that.KeyboardMode = false
		return Change{event: EventFocusMoved}, nil
	default:
		return Change{event: EventKeyIgnored}, nil
	}
}

// moveFocus steps one cell in the arrow's direction, staying on the grid.
func moveFocus(focus int, code string) int {
	row, col := focus/gridSide, focus%gridSide

	switch code {
	case KeyArrowUp:
		row = max(row-1, 0)
	case KeyArrowDown:
		row = min(row+1, gridSide-1)
	case KeyArrowLeft:
		col = max(col-1, 0)
	case KeyArrowRight:
		col = min(col+1, gridSide-1)
	}

	return row*gridSide + col
}
