package template

import "github.com/xuri/excelize/v2"

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Title is the large bold font of the company line.
func (sm *StyleManager) Title() (int, error) {
	return sm.getOrCreate("title", &excelize.Style{
		Font: &excelize.Font{Family: fontFamily, Size: 14, Bold: true},
	})
}

// Label is a bold, unbordered caption.
func (sm *StyleManager) Label() (int, error) {
	return sm.getOrCreate("label", &excelize.Style{Font: boldFont()})
}

// Plain is the regular unbordered font.
func (sm *StyleManager) Plain() (int, error) {
	return sm.getOrCreate("plain", &excelize.Style{Font: normalFont()})
}

// Header is a bold, centered, bordered table header cell.
func (sm *StyleManager) Header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      boldFont(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    defaultBorder(),
	})
}

// BoldBordered is a bold, bordered, left-aligned cell (footing captions).
func (sm *StyleManager) BoldBordered() (int, error) {
	return sm.getOrCreate("bold_bordered", &excelize.Style{
		Font:   boldFont(),
		Border: defaultBorder(),
	})
}

// Centered returns a center-aligned bordered style (cached).
func (sm *StyleManager) Centered() (int, error) {
	return sm.getOrCreate("centered", &excelize.Style{
		Font:      normalFont(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    defaultBorder(),
	})
}

// Right returns a right-aligned bordered style (cached).
func (sm *StyleManager) Right() (int, error) {
	return sm.getOrCreate("right", &excelize.Style{
		Font:      normalFont(),
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    defaultBorder(),
	})
}

// Link is a blue underlined bordered cell for internal hyperlinks.
func (sm *StyleManager) Link() (int, error) {
	return sm.getOrCreate("link", &excelize.Style{
		Font:   &excelize.Font{Family: fontFamily, Size: 11, Color: "0000FF", Underline: "single"},
		Border: defaultBorder(),
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

const fontFamily = "Calibri"

func normalFont() *excelize.Font {
	return &excelize.Font{Family: fontFamily, Size: 11}
}

func boldFont() *excelize.Font {
	return &excelize.Font{Family: fontFamily, Size: 11, Bold: true}
}

func defaultBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
