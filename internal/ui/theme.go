package ui

import "image/color"

var (
	colBackground = color.RGBA{20, 20, 30, 255}
	colSurface    = color.RGBA{245, 245, 245, 255}
	colColumnLine = color.RGBA{60, 60, 60, 255}

	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colResetButton  = color.RGBA{200, 120, 40, 255}
	colSubmitButton = color.RGBA{40, 160, 40, 255}

	colMessageOK   = color.RGBA{40, 200, 40, 255}
	colMessageWarn = color.RGBA{220, 180, 40, 255}
)
