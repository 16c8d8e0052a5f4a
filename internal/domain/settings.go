package domain

// CollectorSettings são as configurações do coletor carregadas do banco no
// início de cada lote. PerformanceFields guarda as combinações de dados de
// desempenho selecionadas (chaves como "日常笔记-图文-近30天-全流量").
type CollectorSettings struct {
	MaxCount          int      `json:"max_count"`
	PerformanceFields []string `json:"performance_fields"`
	Filename          string   `json:"filename"`
	Path              string   `json:"path"`
	SplitFansProfile  bool     `json:"split_fans_profile"`
	AutoExport        bool     `json:"auto_export"`
}

// DefaultCollectorSettings devolve as configurações padrão do coletor,
// com todas as doze combinações de desempenho habilitadas.
func DefaultCollectorSettings() *CollectorSettings {
	return &CollectorSettings{
		MaxCount: 9999,
		PerformanceFields: []string{
			"日常笔记-图文+视频-近30天-全流量",
			"日常笔记-图文-近30天-全流量",
			"日常笔记-视频-近30天-全流量",
			"日常笔记-图文+视频-近90天-全流量",
			"日常笔记-图文-近90天-全流量",
			"日常笔记-视频-近90天-全流量",
			"合作笔记-图文+视频-近30天-全流量",
			"合作笔记-图文-近30天-全流量",
			"合作笔记-视频-近30天-全流量",
			"合作笔记-图文+视频-近90天-全流量",
			"合作笔记-图文-近90天-全流量",
			"合作笔记-视频-近90天-全流量",
		},
		Filename:         "collected_data.xlsx",
		SplitFansProfile: false,
		AutoExport:       true,
	}
}

type UpdateCollectorSettingsRequest struct {
	MaxCount          *int      `json:"max_count"`
	PerformanceFields *[]string `json:"performance_fields"`
	Filename          *string   `json:"filename"`
	Path              *string   `json:"path"`
	SplitFansProfile  *bool     `json:"split_fans_profile"`
	AutoExport        *bool     `json:"auto_export"`
}
