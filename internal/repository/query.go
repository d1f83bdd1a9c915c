package repository

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Query 列表查詢參數
// Sort 沿用前端的排序規格："-year" 表示依 year 遞減，"title" 表示依 title 遞增；
// 空字串維持插入順序。Limit 為 0 時不截斷。
type Query struct {
	Sort  string
	Limit int
}

// parseSort 拆出排序欄位與方向
func parseSort(spec string) (field string, desc bool) {
	if strings.HasPrefix(spec, "-") {
		return spec[1:], true
	}
	return spec, false
}

// validSortField 排序欄位僅允許小寫字母、數字與底線
// 同一條規格直接進入 SQL ORDER BY，故必須白名單化字元
func validSortField(field string) bool {
	if field == "" {
		return false
	}
	for _, r := range field {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// fieldPathByTag 以 json 標籤名稱找出結構體欄位路徑（遞迴處理嵌入欄位）
func fieldPathByTag(t reflect.Type, tag string) ([]int, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if path, ok := fieldPathByTag(f.Type, tag); ok {
				return append([]int{i}, path...), true
			}
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == tag {
			return []int{i}, true
		}
	}
	return nil, false
}

// sortRecords 依排序規格對記錄做穩定排序
// 找不到欄位或規格無效時維持原順序（與原始資料層的寬鬆行為一致）
func sortRecords[T any](recs []T, spec string) {
	field, desc := parseSort(spec)
	if !validSortField(field) {
		return
	}
	var zero T
	path, ok := fieldPathByTag(reflect.TypeOf(zero), field)
	if !ok {
		return
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a := reflect.ValueOf(recs[i]).FieldByIndex(path)
		b := reflect.ValueOf(recs[j]).FieldByIndex(path)
		if desc {
			return valueLess(b, a)
		}
		return valueLess(a, b)
	})
}

// valueLess 比較兩個欄位值的先後
func valueLess(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	case reflect.Struct:
		if at, ok := a.Interface().(time.Time); ok {
			bt, _ := b.Interface().(time.Time)
			return at.Before(bt)
		}
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

// limitRecords 截斷至 limit 筆；limit<=0 不截斷
func limitRecords[T any](recs []T, limit int) []T {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

// matchFields 檢查記錄的每個條件欄位是否嚴格相等（AND）
// 條件鍵找不到對應欄位時視為不符合
func matchFields[T any](rec T, fields map[string]any) bool {
	v := reflect.ValueOf(rec)
	t := v.Type()
	for key, want := range fields {
		path, ok := fieldPathByTag(t, key)
		if !ok {
			return false
		}
		if !reflect.DeepEqual(v.FieldByIndex(path).Interface(), want) {
			return false
		}
	}
	return true
}
