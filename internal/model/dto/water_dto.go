package dto

// UpsertWaterRequest 直接设置某天的饮水杯数
type UpsertWaterRequest struct {
	Count int `json:"count"`
}

// WaterItem 某天的饮水计数
type WaterItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
