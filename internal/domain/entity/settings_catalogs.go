package entity

// Persistence sections, one per settings group.
const (
	SectionView   = "view"
	SectionHotkey = "hotkey"
	SectionOCR    = "ocr"
)

// View property names.
const (
	PropPreviewFont              = "previewFont"
	PropPreviewColor             = "previewColor"
	PropPreviewBackground        = "previewBackground"
	PropPreviewPadding           = "previewPadding"
	PropSelectionBorderColor     = "selectionBorderColor"
	PropSelectionBorderThickness = "selectionBorderThickness"
	PropSelectionBackground      = "selectionBackground"
	PropWindowColor              = "windowColor"
)

// PropEngine is the single OCR group property.
const PropEngine = "engine"

// Hotkey action labels. The first one is the primary capture action.
var HotkeyActions = []string{
	"Start Capture",
	"Open Settings",
	"Toggle Logging",
	"Close Application",
}

// PrimaryCaptureKey is the index of "Q" in KeyLabels.
const PrimaryCaptureKey = 17

// EngineLabels lists the OCR engines. Index 0 defers to the dispatcher default.
var EngineLabels = []string{"<Default>", "manga-ocr", "tesseract"}

// EngineName returns the engine name for an index, "" for the default entry.
func EngineName(index EnumIndex) string {
	if index <= 0 || int(index) >= len(EngineLabels) {
		return ""
	}
	return EngineLabels[index]
}

// ViewCatalog declares the preview and selection styling properties.
var ViewCatalog = MustCatalog(
	Property{
		Name:        PropPreviewFont,
		Kind:        KindFont,
		Default:     Font{Family: "Arial", PointSize: 16},
		Description: "Preview text font",
	},
	Property{
		Name:        PropPreviewColor,
		Kind:        KindColor,
		Default:     RGBA(239, 240, 241, 255),
		Description: "Preview text color",
	},
	Property{
		Name:        PropPreviewBackground,
		Kind:        KindColor,
		Default:     RGBA(72, 75, 106, 230),
		Description: "Preview text background",
	},
	Property{
		Name:        PropPreviewPadding,
		Kind:        KindDistance,
		Default:     Distance(10),
		Min:         5,
		Max:         100,
		Description: "Preview text padding in pixels",
	},
	Property{
		Name:        PropSelectionBorderColor,
		Kind:        KindColor,
		Default:     RGBA(0, 128, 255, 60),
		Description: "Selection border color",
	},
	Property{
		Name:        PropSelectionBorderThickness,
		Kind:        KindDistance,
		Default:     Distance(2),
		Min:         1,
		Max:         100,
		Description: "Selection border thickness in pixels",
	},
	Property{
		Name:        PropSelectionBackground,
		Kind:        KindColor,
		Default:     RGBA(0, 128, 255, 255),
		Description: "Selection mask color",
	},
	Property{
		Name:        PropWindowColor,
		Kind:        KindColor,
		Default:     RGBA(255, 255, 255, 3),
		Description: "Capture window tint",
	},
)

// HotkeyCatalog declares the shortcut properties of every action. The primary
// capture action is forced to Alt+Q.
var HotkeyCatalog = MustCatalog(hotkeyProperties()...)

func hotkeyProperties() []Property {
	var props []Property
	for i, label := range HotkeyActions {
		var forced map[string]Value
		if i == 0 {
			forced = map[string]Value{
				SuffixAlt: Flag(true),
				SuffixKey: EnumIndex(PrimaryCaptureKey),
			}
		}
		props = append(props, ShortcutProperties(label, forced)...)
	}
	return props
}

// OCRCatalog declares the OCR engine selection.
var OCRCatalog = MustCatalog(
	Property{
		Name:        PropEngine,
		Kind:        KindEnumIndex,
		Default:     EnumIndex(1),
		Labels:      EngineLabels,
		Description: "OCR engine",
	},
)
