package content

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Iron-Ham/feeflow/internal/stage"
)

// genericObjective is used for stage ids outside the catalog.
const genericObjective = "執行專業化資料處理"

var objectives = map[int]string{
	1: "對供應商進行WHT/GUI分類處理，建立基礎分類架構",
	2: "執行期初資料調節，確保資料基準一致性",
	3: "進行六大費用分類，建立標準化分類體系",
	4: "執行費用重新分配，優化成本歸屬",
	5: "生成最終調節表，完成整體處理流程",
}

// Objective returns the one-line purpose of a stage.
func Objective(stageID int) string {
	if o, ok := objectives[stageID]; ok {
		return o
	}
	return genericObjective
}

// Fallback synthesizes placeholder text shaped like the document the store
// would have returned. Output depends only on its arguments.
func Fallback(stageID int, c Category) string {
	r := strings.NewReplacer(
		"{stage}", strconv.Itoa(stageID),
		"{title}", stage.Title(stageID),
		"{objective}", Objective(stageID),
		"{fence}", "```",
	)
	switch c {
	case Overview:
		return r.Replace(overviewTemplate)
	case TechnicalDoc:
		return r.Replace(technicalTemplate)
	case SourceCode:
		return r.Replace(sourceTemplate)
	default:
		return ""
	}
}

// Resolve reduces a fetch result to the text to display. Any error, and any
// payload that is not valid UTF-8, yields the fallback for (stageID, c).
func Resolve(stageID int, c Category, data []byte, err error) (text string, viaFallback bool) {
	if err != nil || !utf8.Valid(data) {
		return Fallback(stageID, c), true
	}
	return string(data), false
}
