package view

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAddPlaceholder   = "add_placeholder"
	KeyAdd              = "add"
	KeyEdit             = "edit"
	KeyDelete           = "delete"
	KeyFilterAll        = "filter_all"
	KeyFilterActive     = "filter_active"
	KeyFilterCompleted  = "filter_completed"
	KeyEmptyAll         = "empty_all"
	KeyEmptyActive      = "empty_active"
	KeyEmptyCompleted   = "empty_completed"
	KeyTotalCount       = "total_count"
	KeyCompletedCount   = "completed_count"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyShowDataFile     = "show_data_file"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartToApply   = "restart_to_apply"
	KeyErrorSaving      = "error_saving"
	KeyErrorOpeningFile = "error_opening_file"
)

// DefaultLanguage is used when a requested language is unknown
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		// System locale detection is not implemented; use the default
		lang = DefaultLanguage
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
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ja": "日本語",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Tasks",
		KeyAddPlaceholder:   "What needs to be done?",
		KeyAdd:              "Add",
		KeyEdit:             "Edit",
		KeyDelete:           "Delete",
		KeyFilterAll:        "All",
		KeyFilterActive:     "Active",
		KeyFilterCompleted:  "Completed",
		KeyEmptyAll:         "No tasks",
		KeyEmptyActive:      "No active tasks",
		KeyEmptyCompleted:   "No completed tasks",
		KeyTotalCount:       "Total: %d",
		KeyCompletedCount:   "Completed: %d",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyShowDataFile:     "Show data file",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartToApply:   "Some changes apply after restart.",
		KeyErrorSaving:      "Tasks could not be saved",
		KeyErrorOpeningFile: "Error opening file",
	}

	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:         "ToDoリスト",
		KeyAddPlaceholder:   "新しいタスクを入力...",
		KeyAdd:              "追加",
		KeyEdit:             "編集",
		KeyDelete:           "削除",
		KeyFilterAll:        "すべて",
		KeyFilterActive:     "未完了",
		KeyFilterCompleted:  "完了済み",
		KeyEmptyAll:         "タスクがありません",
		KeyEmptyActive:      "未完了のタスクがありません",
		KeyEmptyCompleted:   "完了済みのタスクがありません",
		KeyTotalCount:       "総タスク: %d",
		KeyCompletedCount:   "完了: %d",
		KeySettings:         "設定",
		KeyLanguage:         "言語",
		KeyShowDataFile:     "データファイルを表示",
		KeySave:             "保存",
		KeyCancel:           "キャンセル",
		KeySettingsSaved:    "設定を保存しました",
		KeyRestartToApply:   "一部の変更は再起動後に反映されます。",
		KeyErrorSaving:      "タスクを保存できませんでした",
		KeyErrorOpeningFile: "ファイルを開けませんでした",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Задачи",
		KeyAddPlaceholder:   "Что нужно сделать?",
		KeyAdd:              "Добавить",
		KeyEdit:             "Изменить",
		KeyDelete:           "Удалить",
		KeyFilterAll:        "Все",
		KeyFilterActive:     "Активные",
		KeyFilterCompleted:  "Выполненные",
		KeyEmptyAll:         "Задач нет",
		KeyEmptyActive:      "Нет активных задач",
		KeyEmptyCompleted:   "Нет выполненных задач",
		KeyTotalCount:       "Всего: %d",
		KeyCompletedCount:   "Выполнено: %d",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyShowDataFile:     "Показать файл данных",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartToApply:   "Часть изменений применится после перезапуска.",
		KeyErrorSaving:      "Не удалось сохранить задачи",
		KeyErrorOpeningFile: "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Tarefas",
		KeyAddPlaceholder:   "O que precisa ser feito?",
		KeyAdd:              "Adicionar",
		KeyEdit:             "Editar",
		KeyDelete:           "Excluir",
		KeyFilterAll:        "Todas",
		KeyFilterActive:     "Ativas",
		KeyFilterCompleted:  "Concluídas",
		KeyEmptyAll:         "Nenhuma tarefa",
		KeyEmptyActive:      "Nenhuma tarefa ativa",
		KeyEmptyCompleted:   "Nenhuma tarefa concluída",
		KeyTotalCount:       "Total: %d",
		KeyCompletedCount:   "Concluídas: %d",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyShowDataFile:     "Mostrar arquivo de dados",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartToApply:   "Algumas alterações valem após reiniciar.",
		KeyErrorSaving:      "Não foi possível salvar as tarefas",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
	}
}
