package resolver

import "github.com/crimson-sun/shelf/internal/model"

// DefaultSynonyms returns the built-in synonym table consulted after name
// matching fails. It is scanned in order and the first hit wins.
func DefaultSynonyms() []model.Synonym {
	return []model.Synonym{
		{Keyword: "รถ", CategoryID: 1},
		{Keyword: "ยาน", CategoryID: 1},
		{Keyword: "บ้าน", CategoryID: 2},
		{Keyword: "คอนโด", CategoryID: 2},
		{Keyword: "ที่ดิน", CategoryID: 2},
		{Keyword: "คอม", CategoryID: 4},
		{Keyword: "computer", CategoryID: 4},
		{Keyword: "ไฟฟ้า", CategoryID: 5},
		{Keyword: "แฟชั่น", CategoryID: 6},
		{Keyword: "fashion", CategoryID: 6},
		{Keyword: "เสื้อ", CategoryID: 6},
		{Keyword: "เกม", CategoryID: 7},
		{Keyword: "game", CategoryID: 7},
		{Keyword: "กล้อง", CategoryID: 8},
		{Keyword: "camera", CategoryID: 8},
		{Keyword: "พระ", CategoryID: 9},
		{Keyword: "สัตว์", CategoryID: 10},
		{Keyword: "pet", CategoryID: 10},
		{Keyword: "บริการ", CategoryID: 11},
		{Keyword: "service", CategoryID: 11},
		{Keyword: "กีฬา", CategoryID: 12},
		{Keyword: "sport", CategoryID: 12},
		{Keyword: "สวน", CategoryID: 13},
		{Keyword: "เบ็ด", CategoryID: 14},
		{Keyword: "ความงาม", CategoryID: 15},
		{Keyword: "beauty", CategoryID: 15},
		{Keyword: "cosmetic", CategoryID: 15},
		{Keyword: "แม่", CategoryID: 16},
		{Keyword: "เด็ก", CategoryID: 16},
		{Keyword: "baby", CategoryID: 16},
		{Keyword: "mother", CategoryID: 16},
	}
}
