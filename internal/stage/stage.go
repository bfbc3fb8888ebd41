// Package stage holds the fixed catalog of the five reconciliation stages
// shown on the dashboard. The catalog is display data only: nothing in
// feeflow executes a stage.
package stage

import "fmt"

// Descriptor describes one stage card. Descriptors are values; the catalog
// hands out copies so callers cannot alter the shared table.
type Descriptor struct {
	ID           int
	Title        string
	EnglishTitle string
	Highlights   []string
	InputFiles   int
	OutputFiles  int
}

// Badge returns the zero-padded label printed on cards and the detail header.
func (d Descriptor) Badge() string {
	return fmt.Sprintf("STAGE %02d", d.ID)
}

// FileSummary returns the card's file statistics line.
func (d Descriptor) FileSummary() string {
	return fmt.Sprintf("輸入：%d個檔案 | 輸出：%d個檔案", d.InputFiles, d.OutputFiles)
}

// catalog is ordered by ID; rendering and lookups rely on that order.
var catalog = []Descriptor{
	{
		ID:           1,
		Title:        "供應商WHT/GUI分類處理",
		EnglishTitle: "Vendor Classification Processing",
		Highlights:   []string{"自動供應商分類", "稅務處理方式判定", "勞務費明細提取"},
		InputFiles:   2,
		OutputFiles:  2,
	},
	{
		ID:           2,
		Title:        "期初資料調節處理",
		EnglishTitle: "Initial Data Reconciliation",
		Highlights:   []string{"期初餘額驗證", "歷史資料整合", "基準點建立"},
		InputFiles:   3,
		OutputFiles:  2,
	},
	{
		ID:           3,
		Title:        "六大分類費用處理",
		EnglishTitle: "Six-Category Expense Processing",
		Highlights:   []string{"費用分類定義", "自動歸類邏輯", "分類準確性驗證"},
		InputFiles:   2,
		OutputFiles:  3,
	},
	{
		ID:           4,
		Title:        "費用重新分配邏輯",
		EnglishTitle: "Cost Reallocation Logic",
		Highlights:   []string{"分配規則設定", "成本歸屬調整", "分配結果驗證"},
		InputFiles:   3,
		OutputFiles:  2,
	},
	{
		ID:           5,
		Title:        "調節表自動生成",
		EnglishTitle: "Reconciliation Table Generation",
		Highlights:   []string{"最終報表產出", "差異分析計算", "品質檢核報告"},
		InputFiles:   4,
		OutputFiles:  1,
	},
}

// Count is the number of stages in the pipeline.
const Count = 5

// Catalog returns every stage in ascending ID order.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	for i, d := range catalog {
		d.Highlights = append([]string(nil), d.Highlights...)
		out[i] = d
	}
	return out
}

// Lookup returns the stage with the given ID.
func Lookup(id int) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			d.Highlights = append([]string(nil), d.Highlights...)
			return d, true
		}
	}
	return Descriptor{}, false
}

// Title returns the localized title for id, or "" for ids outside the catalog.
func Title(id int) string {
	if d, ok := Lookup(id); ok {
		return d.Title
	}
	return ""
}

// TotalFiles sums input and output file counts across the catalog.
func TotalFiles() int {
	total := 0
	for _, d := range catalog {
		total += d.InputFiles + d.OutputFiles
	}
	return total
}
