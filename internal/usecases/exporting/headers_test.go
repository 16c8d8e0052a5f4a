package exporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/kol-collector-api/internal/domain"
)

func TestPerformanceFieldHeaders(t *testing.T) {
	tests := []struct {
		name        string
		fieldPrefix string
		wantLen     int
		contains    []string
		excludes    []string
	}{
		{
			name:        "Notas diárias não têm coluna de transbordo para loja",
			fieldPrefix: "数据表现-日常笔记-图文-近30天-全流量",
			wantLen:     29,
			contains: []string{
				"数据表现-日常笔记-图文-近30天-全流量-笔记数",
				"数据表现-日常笔记-图文-近30天-全流量-阅读量来源-发现页",
				"数据表现-日常笔记-图文-近30天-全流量-曝光量来源-其他",
			},
			excludes: []string{"数据表现-日常笔记-图文-近30天-全流量-外溢进店中位数"},
		},
		{
			name:        "Notas de cooperação incluem a coluna de transbordo",
			fieldPrefix: "数据表现-合作笔记-视频-近90天-全流量",
			wantLen:     30,
			contains:    []string{"数据表现-合作笔记-视频-近90天-全流量-外溢进店中位数"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := performanceFieldHeaders(tt.fieldPrefix)

			assert.Len(t, headers, tt.wantLen)
			for _, header := range tt.contains {
				assert.Contains(t, headers, header)
			}
			for _, header := range tt.excludes {
				assert.NotContains(t, headers, header)
			}
		})
	}
}

func TestPerformanceFieldHeaders_OrdemDasColunas(t *testing.T) {
	headers := performanceFieldHeaders("数据表现-合作笔记-图文-近30天-全流量")

	// O transbordo fica entre os sub-campos simples e as fontes de tráfego
	assert.Equal(t, "数据表现-合作笔记-图文-近30天-全流量-笔记数", headers[0])
	assert.Equal(t, "数据表现-合作笔记-图文-近30天-全流量-预估互动单价", headers[16])
	assert.Equal(t, "数据表现-合作笔记-图文-近30天-全流量-外溢进店中位数", headers[17])
	assert.Equal(t, "数据表现-合作笔记-图文-近30天-全流量-阅读量来源-发现页", headers[18])
}

func TestParseFansProfileString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []fansProfileEntry
	}{
		{
			name:  "Distribuição com vírgula chinesa",
			input: "女 65.32%，男 34.68%",
			want: []fansProfileEntry{
				{Name: "女", Value: "65.32%"},
				{Name: "男", Value: "34.68%"},
			},
		},
		{
			name:  "Vírgula ocidental e percentual inteiro",
			input: "广东 20%,浙江 15.5%",
			want: []fansProfileEntry{
				{Name: "广东", Value: "20%"},
				{Name: "浙江", Value: "15.5%"},
			},
		},
		{
			name:  "Partes sem percentual são ignoradas",
			input: "美食 12.3%，未知，旅行 4.0%",
			want: []fansProfileEntry{
				{Name: "美食", Value: "12.3%"},
				{Name: "旅行", Value: "4.0%"},
			},
		},
		{
			name:  "String vazia não gera entradas",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFansProfileString(tt.input))
		})
	}
}

func TestSplitFansProfileHeaders(t *testing.T) {
	targets := []*domain.CollectTarget{
		{
			Record: domain.FlatRecord{
				"粉丝画像-性别分布":    "女 65.32%，男 34.68%",
				"粉丝画像-地域分布-按省份": "广东 20.0%，浙江 15.5%",
			},
		},
		{
			Record: domain.FlatRecord{
				"粉丝画像-性别分布":    "女 55.00%，男 45.00%",
				"粉丝画像-地域分布-按省份": "江苏 10.0%",
			},
		},
		{Record: nil},
	}

	headers := splitFansProfileHeaders(targets)

	assert.Equal(t, []string{
		"粉丝画像-性别分布-女",
		"粉丝画像-性别分布-男",
		"粉丝画像-地域分布-按省份-广东",
		"粉丝画像-地域分布-按省份-江苏",
		"粉丝画像-地域分布-按省份-浙江",
	}, headers)
}

func TestSplitFansProfileValues(t *testing.T) {
	record := domain.FlatRecord{
		"粉丝画像-性别分布": "女 65.32%，男 34.68%",
	}

	headers := []string{
		"粉丝画像-性别分布-女",
		"粉丝画像-性别分布-男",
		"粉丝画像-地域分布-按省份-广东",
	}

	values := splitFansProfileValues(record, headers)

	assert.Equal(t, []interface{}{"65.32%", "34.68%", ""}, values)
}

func TestBaseRow(t *testing.T) {
	collectedAt := time.Date(2025, 8, 30, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		target   *domain.CollectTarget
		validate func(t *testing.T, row []interface{})
	}{
		{
			name: "Alvo com registro completo",
			target: &domain.CollectTarget{
				UserID: "5ff0e6410000000001008400",
				PgyURL: "https://pgy.xiaohongshu.com/solar/pre-trade/blogger-detail/5ff0e6410000000001008400",
				XhsURL: "https://www.xiaohongshu.com/user/profile/5ff0e6410000000001008400",
				Record: domain.FlatRecord{
					"name":      "测试博主",
					"fansCount": float64(12000),
				},
				CollectedAt: &collectedAt,
			},
			validate: func(t *testing.T, row []interface{}) {
				assert.Len(t, row, len(baseHeaders))
				assert.Equal(t, "5ff0e6410000000001008400", row[1])
				assert.Equal(t, "测试博主", row[4])
				assert.Equal(t, float64(12000), row[9])
			},
		},
		{
			name: "Campos ausentes usam os valores padrão",
			target: &domain.CollectTarget{
				UserID: "abc123",
				Record: domain.FlatRecord{},
			},
			validate: func(t *testing.T, row []interface{}) {
				assert.Equal(t, "", row[4])  // nome
				assert.Equal(t, 0, row[9])   // contagem de fãs
				assert.Equal(t, "", row[20]) // exposição diária
			},
		},
		{
			name: "Nível de saúde zero é exibido, ausente vira vazio",
			target: &domain.CollectTarget{
				UserID: "abc123",
				Record: domain.FlatRecord{"currentLevel": float64(0)},
			},
			validate: func(t *testing.T, row []interface{}) {
				assert.Equal(t, float64(0), row[5])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, baseRow(tt.target))
		})
	}
}
