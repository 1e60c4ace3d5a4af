package energy

import (
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
)

// Action is an entry of the recommendation library.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultActionLibrary lists the built-in actions users can ask timing
// advice for. Custom profile activities append after these.
func DefaultActionLibrary() []Action {
	return []Action{
		{ID: "work", Label: "专注工作"},
		{ID: "meeting", Label: "开会谈事"},
		{ID: "study", Label: "学习充电"},
		{ID: "sign", Label: "签约合作"},
		{ID: "money", Label: "投资决策"},
		{ID: "social", Label: "社交表达"},
		{ID: "date", Label: "表白约会"},
		{ID: "exercise", Label: "运动健身"},
		{ID: "travel", Label: "外出行程"},
		{ID: "cleanup", Label: "整理收尾"},
		{ID: "create", Label: "创作输出"},
		{ID: "plan", Label: "复盘规划"},
	}
}

// actionKeywords widens an action id into the phrases matched against an
// hour's recommendations, taboos, tags and brief text.
var actionKeywords = map[string][]string{
	"work":     {"专注", "深度", "执行", "完成", "工作", "任务", "项目"},
	"meeting":  {"会议", "谈判", "沟通", "公开", "演讲", "讨论", "谈事"},
	"study":    {"学习", "充电", "阅读", "研究", "思考", "理解", "吸收"},
	"sign":     {"签约", "合作", "合同", "法律", "协议", "承诺"},
	"money":    {"投资", "理财", "决策", "金钱", "财务", "收益"},
	"social":   {"社交", "表达", "聚会", "人脉", "关系", "互动", "交流"},
	"date":     {"表白", "约会", "情感", "浪漫", "亲近"},
	"exercise": {"运动", "健身", "锻炼", "体能", "活动", "身体"},
	"travel":   {"出行", "旅行", "外出行程", "移动", "外出", "赶路"},
	"cleanup":  {"整理", "收尾", "清洁", "归纳", "收拾", "完成"},
	"create":   {"创作", "输出", "创意", "写作", "设计", "灵感"},
	"plan":     {"复盘", "规划", "总结", "计划", "反思", "调整"},
}

var elementActivities = map[bazi.Element][]string{
	bazi.Wood:  {"创意工作", "策划", "学习", "社交活动", "户外运动"},
	bazi.Fire:  {"公开演讲", "签约", "谈判", "社交聚会", "启动项目"},
	bazi.Earth: {"理财", "投资决策", "房产事务", "稳健工作", "整理归纳"},
	bazi.Metal: {"决策", "执行", "完成任务", "法律事务", "精细工作"},
	bazi.Water: {"思考", "冥想", "研究", "写作", "休息调养"},
}

var elementAvoidActivities = map[bazi.Element][]string{
	bazi.Wood:  {"重大决策", "签约", "手术"},
	bazi.Fire:  {"冲突对抗", "情绪化决定", "投机冒险"},
	bazi.Earth: {"急躁决定", "剧烈运动", "冒险活动"},
	bazi.Metal: {"感情交流", "创意工作", "放松娱乐"},
	bazi.Water: {"启动新项目", "公开活动", "签约"},
}

// ActivitiesForElement returns the activity suggestions an element favours.
func ActivitiesForElement(e bazi.Element) []string {
	return elementActivities[e]
}

// AvoidActivitiesForElement returns what an element advises against.
func AvoidActivitiesForElement(e bazi.Element) []string {
	return elementAvoidActivities[e]
}

// ReasonTags condenses stars, clashes and the score into at most two short
// UI tags. Star tags win over score fallbacks.
func ReasonTags(stars []bazi.Star, clashes []bazi.Clash, score int) []string {
	var tags []string
	for _, s := range stars {
		switch s.Name {
		case "天乙贵人":
			tags = append(tags, "适合求助")
		case "文昌贵人":
			tags = append(tags, "适合脑力")
		case "桃花":
			tags = append(tags, "人缘在线")
		case "驿马":
			tags = append(tags, "适合跑动")
		}
	}
	if len(clashes) > 0 {
		tags = append(tags, "少做决策", "注意情绪")
	}
	if len(tags) == 0 {
		switch {
		case score >= 80:
			tags = append(tags, "效率极高")
		case score >= 70:
			tags = append(tags, "推进顺利")
		case score <= 30:
			tags = append(tags, "宜静养")
		case score <= 50:
			tags = append(tags, "宜保守")
		}
	}
	return dedupeStrings(tags, 2)
}

func dedupeStrings(in []string, limit int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// MergeActionLibrary appends the user's custom activities to the defaults.
func MergeActionLibrary(custom []profile.Activity) []Action {
	library := DefaultActionLibrary()
	for _, a := range custom {
		library = append(library, Action{ID: a.ID, Label: a.Label})
	}
	return library
}
