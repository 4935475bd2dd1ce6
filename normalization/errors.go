package normalization

import (
	"errors"
	"fmt"
)

// Коды ошибок конвейера нормализации
const (
	CodeValidation      = "validation"
	CodeUnsupportedLang = "unsupported_language"
	CodeMorphBackend    = "morphology_backend"
	CodeLexiconLoad     = "lexicon_load"
	CodeInternal        = "internal"
)

// AppError представляет ошибку конвейера с кодом и контекстом
type AppError struct {
	Code    string `json:"code"`    // Машиночитаемый код ошибки
	Message string `json:"message"` // Сообщение для пользователя
	Err     error  `json:"-"`       // Внутренняя ошибка для логов, не сериализуется
	Context string `json:"-"`       // Дополнительный контекст (функция, параметры)
}

// Error реализует интерфейс error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewValidationError создает ошибку валидации входных данных
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Err:     err,
	}
}

// NewUnsupportedLanguageError создает ошибку неподдерживаемого языка.
// Конвейер при этом продолжает работу на универсальном словаре,
// ошибка попадает только в поле errors результата.
func NewUnsupportedLanguageError(lang string) *AppError {
	return &AppError{
		Code:    CodeUnsupportedLang,
		Message: fmt.Sprintf("язык %q не поддерживается, используется универсальный словарь", lang),
	}
}

// NewMorphBackendError создает ошибку морфологического бэкенда.
// Токен при этом сохраняется в исходном виде с флагом fallback.
func NewMorphBackendError(token string, err error) *AppError {
	return &AppError{
		Code:    CodeMorphBackend,
		Message: fmt.Sprintf("морфологический анализ токена %q недоступен", token),
		Err:     err,
	}
}

// NewLexiconLoadError создает фатальную ошибку загрузки словарей
func NewLexiconLoadError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeLexiconLoad,
		Message: message,
		Err:     err,
	}
}

// NewInternalError создает внутреннюю ошибку конвейера
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapError оборачивает существующую ошибку с контекстом.
// Если ошибка уже AppError, добавляет контекст к сообщению. Иначе создает новую InternalError
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
