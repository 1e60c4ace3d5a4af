package bazi

// Static rule tables of the sexagenary calendar. The maps are package level
// and must never be mutated; every lookup goes through the total functions in
// relations.go so unknown symbols degrade to "no relation" instead of
// panicking.

// stemElements maps each heavenly stem to its element.
var stemElements = map[Stem]Element{
	"甲": Wood, "乙": Wood,
	"丙": Fire, "丁": Fire,
	"戊": Earth, "己": Earth,
	"庚": Metal, "辛": Metal,
	"壬": Water, "癸": Water,
}

// branchElements maps each earthly branch to its element.
var branchElements = map[Branch]Element{
	"子": Water, "丑": Earth, "寅": Wood, "卯": Wood,
	"辰": Earth, "巳": Fire, "午": Fire, "未": Earth,
	"申": Metal, "酉": Metal, "戌": Earth, "亥": Water,
}

// elementGenerates is the generation cycle 木→火→土→金→水→木.
var elementGenerates = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// elementRestricts is the restraint cycle, each element restraining the one
// two steps ahead in the generation order.
var elementRestricts = map[Element]Element{
	Wood:  Earth,
	Fire:  Metal,
	Earth: Water,
	Metal: Wood,
	Water: Fire,
}

// branchSixCombine holds the six harmonious branch pairings (六合).
var branchSixCombine = map[Branch]Branch{
	"子": "丑", "丑": "子",
	"寅": "亥", "亥": "寅",
	"卯": "戌", "戌": "卯",
	"辰": "酉", "酉": "辰",
	"巳": "申", "申": "巳",
	"午": "未", "未": "午",
}

// branchSixClash holds the six opposing branch pairings (六冲).
var branchSixClash = map[Branch]Branch{
	"子": "午", "午": "子",
	"丑": "未", "未": "丑",
	"寅": "申", "申": "寅",
	"卯": "酉", "酉": "卯",
	"辰": "戌", "戌": "辰",
	"巳": "亥", "亥": "巳",
}

// threeHarmonyGroups are the 三合 triads: 申子辰水, 寅午戌火, 巳酉丑金, 亥卯未木.
var threeHarmonyGroups = [][3]Branch{
	{"申", "子", "辰"},
	{"寅", "午", "戌"},
	{"巳", "酉", "丑"},
	{"亥", "卯", "未"},
}

// threeUnionGroups are the 三会 triads: 寅卯辰木, 巳午未火, 申酉戌金, 亥子丑水.
var threeUnionGroups = [][3]Branch{
	{"寅", "卯", "辰"},
	{"巳", "午", "未"},
	{"申", "酉", "戌"},
	{"亥", "子", "丑"},
}

// tianYiMap locates the Nobleman star (天乙贵人) by stem.
// 甲戊并牛羊，乙己鼠猴乡，丙丁猪鸡位，壬癸蛇兔藏，庚辛逢虎马.
var tianYiMap = map[Stem][]Branch{
	"甲": {"丑", "未"},
	"戊": {"丑", "未"},
	"乙": {"子", "申"},
	"己": {"子", "申"},
	"丙": {"亥", "酉"},
	"丁": {"亥", "酉"},
	"壬": {"巳", "卯"},
	"癸": {"巳", "卯"},
	"庚": {"寅", "午"},
	"辛": {"寅", "午"},
}

// taiJiMap locates the 太极贵人 star by stem.
var taiJiMap = map[Stem][]Branch{
	"甲": {"子", "午"},
	"乙": {"子", "午"},
	"丙": {"酉", "卯"},
	"丁": {"酉", "卯"},
	"戊": {"辰", "戌", "丑", "未"},
	"己": {"辰", "戌", "丑", "未"},
	"庚": {"寅", "亥"},
	"辛": {"寅", "亥"},
	"壬": {"巳", "申"},
	"癸": {"巳", "申"},
}

// wenChangMap locates the Scholar star (文昌贵人) by day stem.
// 甲巳乙午丙戊申，丁己酉位庚亥寻，辛子壬寅癸卯位.
var wenChangMap = map[Stem]Branch{
	"甲": "巳", "乙": "午",
	"丙": "申", "戊": "申",
	"丁": "酉", "己": "酉",
	"庚": "亥", "辛": "子",
	"壬": "寅", "癸": "卯",
}

// yangRenMap locates the 羊刃 position by day stem.
var yangRenMap = map[Stem]Branch{
	"甲": "卯", "乙": "辰",
	"丙": "午", "戊": "午",
	"丁": "未", "己": "未",
	"庚": "酉", "辛": "戌",
	"壬": "子", "癸": "丑",
}

// jinYuMap locates the 金舆 star by day stem (two positions past the 禄).
var jinYuMap = map[Stem]Branch{
	"甲": "辰", "乙": "巳",
	"丙": "未", "戊": "未",
	"丁": "申", "己": "申",
	"庚": "戌", "辛": "亥",
	"壬": "丑", "癸": "寅",
}

// taoHuaMap locates the Romance star (桃花) by day or year branch.
// 申子辰在酉，寅午戌在卯，巳酉丑在午，亥卯未在子.
var taoHuaMap = map[Branch]Branch{
	"申": "酉", "子": "酉", "辰": "酉",
	"寅": "卯", "午": "卯", "戌": "卯",
	"巳": "午", "酉": "午", "丑": "午",
	"亥": "子", "卯": "子", "未": "子",
}

// yiMaMap locates the Travel star (驿马) by day or year branch.
var yiMaMap = map[Branch]Branch{
	"申": "寅", "子": "寅", "辰": "寅",
	"寅": "申", "午": "申", "戌": "申",
	"巳": "亥", "酉": "亥", "丑": "亥",
	"亥": "巳", "卯": "巳", "未": "巳",
}

// jieShaMap locates the 劫煞 position by day or year branch.
var jieShaMap = map[Branch]Branch{
	"申": "巳", "子": "巳", "辰": "巳",
	"寅": "亥", "午": "亥", "戌": "亥",
	"巳": "寅", "酉": "寅", "丑": "寅",
	"亥": "申", "卯": "申", "未": "申",
}

// hongLuanMap locates the 红鸾 position by year branch; 天喜 is its clash
// opposite.
var hongLuanMap = map[Branch]Branch{
	"子": "卯", "丑": "寅", "寅": "丑", "卯": "子",
	"辰": "亥", "巳": "戌", "午": "酉", "未": "申",
	"申": "未", "酉": "午", "戌": "巳", "亥": "辰",
}

// lonelinessMap locates the 孤辰 and 寡宿 positions by year branch.
var lonelinessMap = map[Branch]struct{ gu, gua Branch }{
	"亥": {"寅", "戌"}, "子": {"寅", "戌"}, "丑": {"寅", "戌"},
	"寅": {"巳", "丑"}, "卯": {"巳", "丑"}, "辰": {"巳", "丑"},
	"巳": {"申", "辰"}, "午": {"申", "辰"}, "未": {"申", "辰"},
	"申": {"亥", "未"}, "酉": {"亥", "未"}, "戌": {"亥", "未"},
}

// kuiGangPillars are the 魁罡 pillars.
var kuiGangPillars = map[string]struct{}{
	"庚辰": {}, "庚戌": {}, "壬辰": {}, "戊戌": {},
}
