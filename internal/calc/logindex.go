package calc

// StatusRecord 一条已落库的打卡记录，core 层只读不写
type StatusRecord struct {
	EntityID string
	Date     string // YYYY-MM-DD
	Status   Status
}

// Index 构建一次、多次查询的点查索引
// 底层记录变化后需要调用方重建，索引本身无副作用
type Index struct {
	entries map[string]Status
}

// 日期串定宽，entityID + "|" + date 不会产生歧义键
func indexKey(entityID, date string) string {
	return entityID + "|" + date
}

// BuildIndex O(n) 构建，之后 Status 查询均摊 O(1)
func BuildIndex(records []StatusRecord) *Index {
	entries := make(map[string]Status, len(records))
	for _, r := range records {
		entries[indexKey(r.EntityID, r.Date)] = r.Status
	}
	return &Index{entries: entries}
}

// Status 查询某实体某天的状态，缺省返回 empty
func (idx *Index) Status(entityID, date string) Status {
	if idx == nil || idx.entries == nil {
		return StatusEmpty
	}
	if s, ok := idx.entries[indexKey(entityID, date)]; ok {
		return s
	}
	return StatusEmpty
}

// Len 索引内的记录条数
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
