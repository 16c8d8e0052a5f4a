package domain

import "time"

// Estados de um alvo de coleta. Os estados intermediários de coleta são
// derivados por estágio (ver StatusCollectingStage).
const (
	TargetStatusPending   = "待采集"
	TargetStatusCompleted = "已完成"

	// Prefixo dos estados de falha: "失败: <motivo>"
	TargetStatusFailedPrefix = "失败: "
)

// StatusCollectingStage monta o estado intermediário de coleta de um estágio,
// no formato "采集中-<estágio>".
func StatusCollectingStage(stage string) string {
	return "采集中-" + stage
}

// FlatRecord é o registro achatado de um alvo: um mapa de nome de campo
// (rótulo em chinês, como exportado para a planilha) para o valor extraído.
type FlatRecord map[string]any

// CollectTarget é um blogueiro a ser coletado, identificado pelo user_id
// extraído da URL importada.
type CollectTarget struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	PgyURL      string     `json:"pgy_url"`
	XhsURL      string     `json:"xhs_url"`
	Nickname    string     `json:"nickname"`
	Status      string     `json:"status"`
	Record      FlatRecord `json:"record,omitempty"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ImportTargetsRequest aceita URLs tanto como lista quanto como texto com
// uma URL por linha.
type ImportTargetsRequest struct {
	URLs []string `json:"urls"`
	Text string   `json:"text"`
}

type ImportTargetsResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Invalid int `json:"invalid"`
}
