package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyEdit             = "edit"
	KeyView             = "view"
	KeyLanguage         = "language"
	KeyOpenScene        = "open_scene"
	KeySaveScene        = "save_scene"
	KeySaveSceneAs      = "save_scene_as"
	KeyLoadSample       = "load_sample"
	KeyUndo             = "undo"
	KeyRedo             = "redo"
	KeyRefreshIcons     = "refresh_icons"
	KeyRevealIconFolder = "reveal_icon_folder"
	KeyOpenInEditor     = "open_in_editor"
	KeyExpandAll        = "expand_all"
	KeyCollapseAll      = "collapse_all"
	KeySettings         = "settings"
	KeyClose            = "close"

	KeySceneLoaded     = "scene_loaded"
	KeySceneSaved      = "scene_saved"
	KeySceneReloaded   = "scene_reloaded"
	KeyIconsLoaded     = "icons_loaded"
	KeyErrorOpenScene  = "error_open_scene"
	KeyErrorSaveScene  = "error_save_scene"
	KeyUnsavedChanges  = "unsaved_changes"
	KeyDiscardChanges  = "discard_changes"
	KeyNothingToUndo   = "nothing_to_undo"
	KeySettingsCleared = "settings_cleared"

	KeySectionGeneral    = "section_general"
	KeySectionColors     = "section_colors"
	KeySectionComponents = "section_components"
	KeySectionLabels     = "section_labels"

	KeyEnabled            = "enabled"
	KeyIconFolder         = "icon_folder"
	KeyWatchFiles         = "watch_files"
	KeyBrowse             = "browse"
	KeyGUIXOffset         = "gui_x_offset"
	KeyClearSettings      = "clear_settings"
	KeyClearSettingsAsk   = "clear_settings_ask"
	KeyColorsEnabled      = "colors_enabled"
	KeyGuideLines         = "guide_lines"
	KeyRowColoringOdd     = "row_coloring_odd"
	KeyRowColoringEven    = "row_coloring_even"
	KeyColorOne           = "color_one"
	KeyColorTwo           = "color_two"
	KeyColorThree         = "color_three"
	KeyIconTint           = "icon_tint"
	KeyIconFadedTint      = "icon_faded_tint"
	KeyIconBackground     = "icon_background"
	KeyIconBackgroundOnly = "icon_background_overlap"
	KeyIconsEnabled       = "icons_enabled"
	KeyDragToggle         = "drag_toggle"
	KeyContextClick       = "context_click"
	KeyShowObjectIcon     = "show_object_icon"
	KeyCustomObjectIcon   = "custom_object_icon"
	KeyShowTransformIcon  = "show_transform_icon"
	KeyShowNonBehaviour   = "show_non_behaviour"
	KeyLinkCursor         = "link_cursor"
	KeyAlwaysShowIcons    = "always_show_icons"
	KeyHiddenTypes        = "hidden_types"
	KeyAddHiddenType      = "add_hidden_type"
	KeyCaseSensitive      = "case_sensitive"
	KeyInvalidPattern     = "invalid_pattern"
	KeyLabelsEnabled      = "labels_enabled"
	KeyLabelContextClick  = "label_context_click"
	KeyLayerLabel         = "layer_label"
	KeyDefaultLayerLabel  = "default_layer_label"
	KeyLayerIndex         = "layer_index"
	KeyLayerLabelWidth    = "layer_label_width"
	KeyTagLabel           = "tag_label"
	KeyUntaggedLabel      = "untagged_label"
	KeyTagLabelWidth      = "tag_label_width"
	KeyReset              = "reset"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Hierarchy Plus",
		KeyFile:             "File",
		KeyEdit:             "Edit",
		KeyView:             "View",
		KeyLanguage:         "Language",
		KeyOpenScene:        "Open Scene...",
		KeySaveScene:        "Save Scene",
		KeySaveSceneAs:      "Save Scene As...",
		KeyLoadSample:       "Load Sample Scene",
		KeyUndo:             "Undo",
		KeyRedo:             "Redo",
		KeyRefreshIcons:     "Refresh Icons",
		KeyRevealIconFolder: "Reveal Icon Folder",
		KeyOpenInEditor:     "Open in Editor",
		KeyExpandAll:        "Expand All",
		KeyCollapseAll:      "Collapse All",
		KeySettings:         "Settings",
		KeyClose:            "Close",

		KeySceneLoaded:     "Loaded %s (%d items)",
		KeySceneSaved:      "Saved %s",
		KeySceneReloaded:   "Reloaded %s from disk",
		KeyIconsLoaded:     "Loaded %d custom icons",
		KeyErrorOpenScene:  "Error opening scene",
		KeyErrorSaveScene:  "Error saving scene",
		KeyUnsavedChanges:  "Unsaved Changes",
		KeyDiscardChanges:  "The scene has unsaved changes. Discard them?",
		KeyNothingToUndo:   "Nothing to undo",
		KeySettingsCleared: "Settings have been reset",

		KeySectionGeneral:    "General",
		KeySectionColors:     "Colors",
		KeySectionComponents: "Components",
		KeySectionLabels:     "Labels",

		KeyEnabled:            "Enabled",
		KeyIconFolder:         "Custom Icon Folder",
		KeyWatchFiles:         "Reload files when they change",
		KeyBrowse:             "Browse",
		KeyGUIXOffset:         "GUI X Offset",
		KeyClearSettings:      "Clear Settings",
		KeyClearSettingsAsk:   "Reset every setting to its default?",
		KeyColorsEnabled:      "Colors Enabled",
		KeyGuideLines:         "Guide Lines",
		KeyRowColoringOdd:     "Odd Row Color",
		KeyRowColoringEven:    "Even Row Color",
		KeyColorOne:           "General Color",
		KeyColorTwo:           "Foreground Color",
		KeyColorThree:         "Background Color",
		KeyIconTint:           "Icon Tint",
		KeyIconFadedTint:      "Disabled Icon Tint",
		KeyIconBackground:     "Icon Background",
		KeyIconBackgroundOnly: "Background Only When Overlapping",
		KeyIconsEnabled:       "Icons Enabled",
		KeyDragToggle:         "Drag to Toggle",
		KeyContextClick:       "Right Click Component Menu",
		KeyShowObjectIcon:     "Show Object Icon",
		KeyCustomObjectIcon:   "Use Custom Object Icon",
		KeyShowTransformIcon:  "Show Transform Icon",
		KeyShowNonBehaviour:   "Show Non-Toggleable Icons",
		KeyLinkCursor:         "Link Cursor on Hover",
		KeyAlwaysShowIcons:    "Always Show Icons",
		KeyHiddenTypes:        "Hidden Icon Types",
		KeyAddHiddenType:      "Add",
		KeyCaseSensitive:      "Case Sensitive",
		KeyInvalidPattern:     "Invalid pattern",
		KeyLabelsEnabled:      "Labels Enabled",
		KeyLabelContextClick:  "Right Click Label Menu",
		KeyLayerLabel:         "Show Layer Label",
		KeyDefaultLayerLabel:  "Show Default Layer Label",
		KeyLayerIndex:         "Show Layer Index",
		KeyLayerLabelWidth:    "Layer Label Width",
		KeyTagLabel:           "Show Tag Label",
		KeyUntaggedLabel:      "Show Untagged Label",
		KeyTagLabelWidth:      "Tag Label Width",
		KeyReset:              "Reset",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Hierarchy Plus",
		KeyFile:             "Файл",
		KeyEdit:             "Правка",
		KeyView:             "Вид",
		KeyLanguage:         "Язык",
		KeyOpenScene:        "Открыть сцену...",
		KeySaveScene:        "Сохранить сцену",
		KeySaveSceneAs:      "Сохранить сцену как...",
		KeyLoadSample:       "Загрузить пример",
		KeyUndo:             "Отменить",
		KeyRedo:             "Повторить",
		KeyRefreshIcons:     "Обновить иконки",
		KeyRevealIconFolder: "Показать папку иконок",
		KeyOpenInEditor:     "Открыть в редакторе",
		KeyExpandAll:        "Развернуть всё",
		KeyCollapseAll:      "Свернуть всё",
		KeySettings:         "Настройки",
		KeyClose:            "Закрыть",

		KeySceneLoaded:     "Загружено %s (%d объектов)",
		KeySceneSaved:      "Сохранено %s",
		KeySceneReloaded:   "%s перезагружен с диска",
		KeyIconsLoaded:     "Загружено иконок: %d",
		KeyErrorOpenScene:  "Ошибка открытия сцены",
		KeyErrorSaveScene:  "Ошибка сохранения сцены",
		KeyUnsavedChanges:  "Несохранённые изменения",
		KeyDiscardChanges:  "В сцене есть несохранённые изменения. Отменить их?",
		KeyNothingToUndo:   "Нечего отменять",
		KeySettingsCleared: "Настройки сброшены",

		KeySectionGeneral:    "Общие",
		KeySectionColors:     "Цвета",
		KeySectionComponents: "Компоненты",
		KeySectionLabels:     "Метки",

		KeyEnabled:          "Включено",
		KeyIconFolder:       "Папка иконок",
		KeyWatchFiles:       "Перезагружать изменённые файлы",
		KeyBrowse:           "Обзор",
		KeyClearSettings:    "Сбросить настройки",
		KeyClearSettingsAsk: "Вернуть все настройки по умолчанию?",
		KeyHiddenTypes:      "Скрытые типы иконок",
		KeyAddHiddenType:    "Добавить",
		KeyCaseSensitive:    "С учётом регистра",
		KeyInvalidPattern:   "Неверный шаблон",
		KeyReset:            "Сброс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Hierarchy Plus",
		KeyFile:             "Arquivo",
		KeyEdit:             "Editar",
		KeyView:             "Exibir",
		KeyLanguage:         "Idioma",
		KeyOpenScene:        "Abrir Cena...",
		KeySaveScene:        "Salvar Cena",
		KeySaveSceneAs:      "Salvar Cena Como...",
		KeyLoadSample:       "Carregar Cena de Exemplo",
		KeyUndo:             "Desfazer",
		KeyRedo:             "Refazer",
		KeyRefreshIcons:     "Atualizar Ícones",
		KeyRevealIconFolder: "Mostrar Pasta de Ícones",
		KeyOpenInEditor:     "Abrir no Editor",
		KeyExpandAll:        "Expandir Tudo",
		KeyCollapseAll:      "Recolher Tudo",
		KeySettings:         "Configurações",
		KeyClose:            "Fechar",

		KeySceneLoaded:     "%s carregada (%d itens)",
		KeySceneSaved:      "%s salva",
		KeySceneReloaded:   "%s recarregada do disco",
		KeyIconsLoaded:     "%d ícones personalizados carregados",
		KeyErrorOpenScene:  "Erro ao abrir cena",
		KeyErrorSaveScene:  "Erro ao salvar cena",
		KeyUnsavedChanges:  "Alterações Não Salvas",
		KeyDiscardChanges:  "A cena tem alterações não salvas. Descartá-las?",
		KeyNothingToUndo:   "Nada para desfazer",
		KeySettingsCleared: "Configurações redefinidas",

		KeySectionGeneral:    "Geral",
		KeySectionColors:     "Cores",
		KeySectionComponents: "Componentes",
		KeySectionLabels:     "Rótulos",

		KeyEnabled:          "Ativado",
		KeyIconFolder:       "Pasta de Ícones",
		KeyWatchFiles:       "Recarregar arquivos alterados",
		KeyBrowse:           "Navegar",
		KeyClearSettings:    "Limpar Configurações",
		KeyClearSettingsAsk: "Redefinir todas as configurações?",
		KeyHiddenTypes:      "Tipos de Ícone Ocultos",
		KeyAddHiddenType:    "Adicionar",
		KeyCaseSensitive:    "Diferenciar Maiúsculas",
		KeyInvalidPattern:   "Padrão inválido",
		KeyReset:            "Redefinir",
	}
}
