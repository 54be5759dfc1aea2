package calc

// Status 每日打卡格子的三种状态
type Status string

const (
	StatusDone  Status = "done"
	StatusSkip  Status = "skip"
	StatusEmpty Status = "empty"
)

// cycle 固定的点击循环顺序 empty -> done -> skip -> empty
var cycle = map[Status]Status{
	StatusEmpty: StatusDone,
	StatusDone:  StatusSkip,
	StatusSkip:  StatusEmpty,
}

// Next 返回循环中的下一个状态，未知输入按 empty 处理
func (s Status) Next() Status {
	if next, ok := cycle[s]; ok {
		return next
	}
	return StatusDone
}

// Valid 校验状态值是否合法
func (s Status) Valid() bool {
	_, ok := cycle[s]
	return ok
}
