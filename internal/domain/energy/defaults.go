package energy

import "fmt"

const genericElement = "通用"

// DefaultHourRecords is the circadian baseline shown before the user enters
// birth info. Scores follow a generic alertness curve peaking mid-morning
// and mid-afternoon.
func DefaultHourRecords() []HourRecord {
	return []HourRecord{
		defaultRecord(0, 25, "宜静养", "适合睡眠休息，避免剧烈活动。",
			[]string{"冥想", "轻松阅读"}, []string{"剧烈运动", "重要决策"}, "宜静养"),
		defaultRecord(1, 20, "深度休息", "身心最需要休息的时段。",
			[]string{"深度睡眠"}, []string{"任何活动"}, "宜静养"),
		defaultRecord(2, 15, "低谷期", "能量最低，不宜安排任何重要事务。",
			[]string{"睡眠"}, []string{"工作", "决策", "运动"}, "宜静养"),
		defaultRecord(3, 18, "渐复苏", "能量开始缓慢恢复。",
			[]string{"继续睡眠"}, []string{"重体力活动"}, "宜静养"),
		defaultRecord(4, 22, "早起适宜", "适合早起人群的轻度活动。",
			[]string{"轻度冥想", "拉伸"}, []string{"剧烈运动"}, "宜静养"),
		defaultRecord(5, 30, "渐入状态", "思维开始清晰，适合轻度准备工作。",
			[]string{"晨间规划", "轻度运动"}, []string{"复杂决策"}, "宜规划"),
		defaultRecord(6, 45, "晨间活力", "适合开始一天的准备工作。",
			[]string{"晨练", "整理思路"}, []string{"情感谈话"}, "宜规划"),
		defaultRecord(7, 55, "精神饱满", "思维清晰，适合处理重要但不复杂的事务。",
			[]string{"重要沟通", "规划制定"}, []string{"冲动决策"}, "宜沟通"),
		defaultRecord(8, 62, "工作启动", "适合开始工作状态，处理日常事务。",
			[]string{"邮件处理", "日程安排"}, []string{"重大签约"}, "宜启动"),
		defaultRecord(9, 68, "适合启动", "思路相对清晰，适合处理需要专注的工作。",
			[]string{"专注工作", "重要任务"}, []string{"情感决策"}, "宜专注"),
		defaultRecord(10, 82, "黄金时段", "一天中的第一个能量高峰，适合处理重要事务。",
			[]string{"重要会议", "关键决策", "创意工作"}, []string{"琐碎事务"}, "效率高"),
		defaultRecord(11, 78, "持续高效", "延续上午的高能量状态。",
			[]string{"深度工作", "重要谈判"}, []string{"分散注意力的活动"}, "效率高"),
		defaultRecord(12, 65, "需要平衡", "能量开始下降，需要适当休息。",
			[]string{"用餐", "轻松交流"}, []string{"高强度工作"}, "宜休息"),
		defaultRecord(13, 58, "餐后调整", "用餐后需要时间消化调整。",
			[]string{"轻度活动", "午休"}, []string{"重要会议"}, "宜休息"),
		defaultRecord(14, 42, "低谷期", "下午低谷期，容易疲倦分神。",
			[]string{"休息", "轻松阅读"}, []string{"重要决策", "复杂工作"}, "防犯错"),
		defaultRecord(15, 72, "下午高峰", "下午的能量回升期，适合推进重要工作。",
			[]string{"重要项目", "关键沟通"}, []string{"琐碎杂务"}, "效率高"),
		defaultRecord(16, 69, "稳定推进", "能量稳定，适合持续性工作。",
			[]string{"专注任务", "团队协作"}, []string{"情绪化决策"}, "宜专注"),
		defaultRecord(17, 63, "收尾阶段", "适合总结和收尾工作。",
			[]string{"工作总结", "明日规划"}, []string{"新项目启动"}, "宜收尾"),
		defaultRecord(18, 56, "转换模式", "从工作模式向生活模式转换。",
			[]string{"轻松活动", "社交"}, []string{"高强度工作"}, "宜放松"),
		defaultRecord(19, 52, "社交时光", "适合社交和轻松的个人活动。",
			[]string{"社交聚会", "兴趣爱好"}, []string{"复杂思考"}, "宜社交"),
		defaultRecord(20, 48, "放松时段", "身心开始放松，准备结束一天。",
			[]string{"娱乐", "轻度运动"}, []string{"工作", "学习"}, "宜放松"),
		defaultRecord(21, 40, "准备休息", "开始准备休息，避免刺激性活动。",
			[]string{"阅读", "音乐"}, []string{"激烈运动", "重要决策"}, "宜休息"),
		defaultRecord(22, 32, "睡前准备", "准备睡眠，让身心逐渐安静下来。",
			[]string{"轻松阅读", "冥想"}, []string{"工作", "刺激性活动"}, "宜静养"),
		defaultRecord(23, 28, "入睡时机", "最佳入睡时间，让身体进入休息状态。",
			[]string{"睡眠准备"}, []string{"任何兴奋性活动"}, "宜静养"),
	}
}

// DefaultHourRecord returns the baseline slot for an hour, or a neutral
// score-50 record when the hour is out of the table's range.
func DefaultHourRecord(hour int) HourRecord {
	if hour >= 0 && hour < 24 {
		return DefaultHourRecords()[hour]
	}
	return defaultRecord(hour, 50, "平稳", "能量平和，可处理日常事务。",
		[]string{"日常工作"}, []string{"重大决策"}, "平稳")
}

func defaultRecord(hour, score int, label, brief string, recommended, avoid []string, tag string) HourRecord {
	return HourRecord{
		Hour:               hour,
		RangeLabel:         HourRangeLabel(hour),
		Score:              score,
		LevelLabel:         label,
		Brief:              brief,
		Element:            genericElement,
		RecommendedActions: recommended,
		AvoidActions:       avoid,
		ReasonTags:         []string{tag},
	}
}

// HourRangeLabel formats an hour as its "HH:00-HH:59" display range.
func HourRangeLabel(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:59", hour, hour)
}
