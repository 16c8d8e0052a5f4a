package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifica as falhas do cliente da plataforma Pugongying.
type ErrorKind string

const (
	// ErrKindTimeout indica que a requisição excedeu o tempo limite
	ErrKindTimeout ErrorKind = "TIMEOUT"
	// ErrKindNetwork indica falha de transporte antes de obter uma resposta
	ErrKindNetwork ErrorKind = "NETWORK"
	// ErrKindHTTPStatus indica resposta HTTP com status inesperado
	ErrKindHTTPStatus ErrorKind = "HTTP_STATUS"
	// ErrKindDataUnavailable indica o status 406 da plataforma (dados indisponíveis)
	ErrKindDataUnavailable ErrorKind = "DATA_UNAVAILABLE"
	// ErrKindParse indica corpo de resposta que não pôde ser decodificado
	ErrKindParse ErrorKind = "PARSE"
	// ErrKindLogical indica envelope com code != 0 ou success == false
	ErrKindLogical ErrorKind = "LOGICAL"
)

// APIError é o erro estruturado devolvido por todas as chamadas ao cliente.
// A mensagem preserva o formato exibido ao usuário final.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewTimeoutError(err error) *APIError {
	return &APIError{Kind: ErrKindTimeout, Message: "请求超时", Err: err}
}

func NewNetworkError(err error) *APIError {
	return &APIError{Kind: ErrKindNetwork, Message: fmt.Sprintf("请求异常: %v", err), Err: err}
}

func NewHTTPStatusError(statusCode int) *APIError {
	return &APIError{Kind: ErrKindHTTPStatus, StatusCode: statusCode, Message: fmt.Sprintf("HTTP错误: %d", statusCode)}
}

func NewDataUnavailableError() *APIError {
	return &APIError{Kind: ErrKindDataUnavailable, StatusCode: 406, Message: "数据不可用"}
}

func NewParseError(err error) *APIError {
	return &APIError{Kind: ErrKindParse, Message: fmt.Sprintf("解析响应失败: %v", err), Err: err}
}

func NewLogicalError(msg string) *APIError {
	if msg == "" {
		msg = "未知错误"
	}
	return &APIError{Kind: ErrKindLogical, Message: fmt.Sprintf("接口返回错误: %s", msg)}
}

// IsDataUnavailable informa se o erro representa o status 406 da plataforma,
// o único caso elegível para nova tentativa automática.
func IsDataUnavailable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindDataUnavailable
}
