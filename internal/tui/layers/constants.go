package layers

const (
	ModalDefaultWidthDivisor = 2

	ModalMinWidth = 40
	ModalMaxWidth = 80

	ModalMaxHeightNumerator = 3
	ModalMaxHeightDivisor   = 4 // 3/4 = 75% of screen height
	ModalMinHeight          = 8

	ModalBorderPaddingWidth  = 6 // border + horizontal padding
	ModalBorderPaddingHeight = 4 // border + vertical padding
)
