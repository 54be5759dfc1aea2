// Package export 打卡表的 CSV 导出与还原，纯函数，不碰存储
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
)

// BuildMonthCSV 表头 Habit,1..N，每行一个习惯，单元格是状态 token
func BuildMonthCSV(habits []*model.Habit, idx *calc.Index, year, month int) (string, error) {
	days := calc.DayDates(year, month)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(days)+1)
	header = append(header, "Habit")
	for i := range days {
		header = append(header, strconv.Itoa(i+1))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, h := range habits {
		hid := strconv.FormatInt(h.ID, 10)
		row := make([]string, 0, len(days)+1)
		row = append(row, h.Name)
		for _, day := range days {
			row = append(row, string(idx.Status(hid, day)))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

// ParseMonthCSV 把导出的打卡表还原成状态记录，EntityID 是习惯名
// 只还原 done/skip，empty 本来就是缺省值
func ParseMonthCSV(r io.Reader, year, month int) ([]calc.StatusRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	days := calc.DaysInMonth(year, month)
	if len(header) != days+1 || header[0] != "Habit" {
		return nil, fmt.Errorf("unexpected csv header for %d-%02d: %v", year, month, header)
	}

	var records []calc.StatusRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		name := row[0]
		for day := 1; day <= days; day++ {
			st := calc.Status(row[day])
			if !st.Valid() {
				return nil, fmt.Errorf("invalid status %q at row %q day %d", row[day], name, day)
			}
			if st == calc.StatusEmpty {
				continue
			}
			records = append(records, calc.StatusRecord{
				EntityID: name,
				Date:     calc.FormatDate(year, month, day),
				Status:   st,
			})
		}
	}
	return records, nil
}
