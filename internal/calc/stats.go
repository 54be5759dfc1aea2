package calc

import "math"

// Breakdown done/skip/empty 的计数与占比汇总
type Breakdown struct {
	DoneCount    int     `json:"done_count"`
	SkipCount    int     `json:"skip_count"`
	EmptyCount   int     `json:"empty_count"`
	DonePercent  float64 `json:"done_percent"`
	SkipPercent  float64 `json:"skip_percent"`
	EmptyPercent float64 `json:"empty_percent"`
	Total        int     `json:"total"`
}

// EntityPerformance 单个实体的完成情况
type EntityPerformance struct {
	EntityID  string `json:"entity_id"`
	DoneCount int    `json:"done_count"`
	SkipCount int    `json:"skip_count"`
}

// 四舍五入到 1 位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percent 总数为 0 时返回 0，永远不会出现 NaN
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// CompletionBreakdown 对一批记录做 done/skip/empty 汇总
func CompletionBreakdown(records []StatusRecord) Breakdown {
	b := Breakdown{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusDone:
			b.DoneCount++
		case StatusSkip:
			b.SkipCount++
		default:
			b.EmptyCount++
		}
	}
	b.DonePercent = percent(b.DoneCount, b.Total)
	b.SkipPercent = percent(b.SkipCount, b.Total)
	b.EmptyPercent = percent(b.EmptyCount, b.Total)
	return b
}

// PerEntityPerformance 按传入的实体顺序逐个统计
// 没有任何记录的实体也要出现在结果里（零计数），不能省略
func PerEntityPerformance(records []StatusRecord, entityIDs []string) []EntityPerformance {
	byEntity := make(map[string]*EntityPerformance, len(entityIDs))
	result := make([]EntityPerformance, len(entityIDs))
	for i, id := range entityIDs {
		result[i] = EntityPerformance{EntityID: id}
		byEntity[id] = &result[i]
	}

	for _, r := range records {
		perf, ok := byEntity[r.EntityID]
		if !ok {
			continue
		}
		switch r.Status {
		case StatusDone:
			perf.DoneCount++
		case StatusSkip:
			perf.SkipCount++
		}
	}
	return result
}

// AverageOf 求平均值，空序列定义为 0，除零由这里兜底而不是展示层
func AverageOf(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	var sum float64
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers))
}
