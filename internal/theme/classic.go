package theme

import "github.com/gdamore/tcell/v2"

// DOS 16-color palette
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSGreen     = tcell.NewHexColor(0x008000)
	DOSBrown     = tcell.NewHexColor(0x808000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSCyan      = tcell.NewHexColor(0x008080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)

	DOSDarkGray   = tcell.NewHexColor(0x808080)
	DOSLightRed   = tcell.NewHexColor(0xFF0000)
	DOSLightGreen = tcell.NewHexColor(0x00FF00)
	DOSYellow     = tcell.NewHexColor(0xFFFF00)
	DOSLightCyan  = tcell.NewHexColor(0x00FFFF)
	DOSWhite      = tcell.NewHexColor(0xFFFFFF)
)

// ClassicTheme is the blue DOS-style editor theme
type ClassicTheme struct{}

// NewClassicTheme creates a new classic theme instance
func NewClassicTheme() *ClassicTheme {
	return &ClassicTheme{}
}

func (t *ClassicTheme) Name() string {
	return "classic"
}

func (t *ClassicTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: DOSBlue,
		Foreground: DOSWhite,
		Border:     DOSWhite,
		Title:      DOSYellow,
		SelectedBg: DOSWhite,
		SelectedFg: DOSBlack,
		ButtonBg:   DOSLightGray,
		ButtonFg:   DOSBlack,
		FieldBg:    tcell.NewHexColor(0x000040), // darker blue
		FieldFg:    DOSWhite,
	}
}

func (t *ClassicTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: DOSCyan,
		Foreground: DOSBlack,
		ErrorFg:    DOSLightRed,
		WarningFg:  DOSYellow,
		SuccessFg:  DOSLightGreen,
		DirtyFg:    DOSYellow,
	}
}

func (t *ClassicTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Border:     DOSLightGray,
		Title:      DOSLightCyan,
		HeaderBg:   DOSBlue,
		HeaderFg:   DOSWhite,
		Negative:   DOSLightRed,
		Positive:   DOSLightGreen,
	}
}

// MonoTheme uses the terminal's own default colors
type MonoTheme struct{}

// NewMonoTheme creates a new mono theme instance
func NewMonoTheme() *MonoTheme {
	return &MonoTheme{}
}

func (t *MonoTheme) Name() string {
	return "mono"
}

func (t *MonoTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Border:     tcell.ColorDefault,
		Title:      tcell.ColorDefault,
		SelectedBg: tcell.ColorWhite,
		SelectedFg: tcell.ColorBlack,
		ButtonBg:   tcell.ColorWhite,
		ButtonFg:   tcell.ColorBlack,
		FieldBg:    tcell.ColorDefault,
		FieldFg:    tcell.ColorDefault,
	}
}

func (t *MonoTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		ErrorFg:    tcell.ColorRed,
		WarningFg:  tcell.ColorYellow,
		SuccessFg:  tcell.ColorGreen,
		DirtyFg:    tcell.ColorYellow,
	}
}

func (t *MonoTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Border:     tcell.ColorDefault,
		Title:      tcell.ColorDefault,
		HeaderBg:   tcell.ColorDefault,
		HeaderFg:   tcell.ColorDefault,
		Negative:   tcell.ColorRed,
		Positive:   tcell.ColorGreen,
	}
}
