package domain

import "encoding/json"

// Envelope é o envelope padrão das respostas da plataforma. O payload em Data
// só é utilizável quando Code == 0 e Success == true.
type Envelope struct {
	Code    int             `json:"code"`
	Success bool            `json:"success"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

// Usable informa se o envelope carrega um payload válido.
func (e *Envelope) Usable() bool {
	return e.Code == 0 && e.Success
}

// PerformanceParams são os parâmetros das consultas de desempenho de notas.
// Business: 0 = notas diárias, 1 = notas de cooperação. NoteType: 1 = imagem,
// 2 = vídeo, 3 = imagem+vídeo. DateType: 1 = últimos 30 dias, 2 = últimos 90 dias.
type PerformanceParams struct {
	Business        int
	NoteType        int
	DateType        int
	AdvertiseSwitch int
}

// UserRole descreve um papel vinculado à conta autenticada na plataforma.
type UserRole struct {
	NickName string `json:"nickName"`
}

// UserInfo é o payload de /api/solar/user/info, usado na validação de contas.
type UserInfo struct {
	RoleInfoList []UserRole `json:"roleInfoList"`
}
