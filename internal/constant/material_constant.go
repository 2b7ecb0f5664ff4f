package constant

import "zhibi-tui/internal/entity"

const (
	// TypeFilterAll is the sentinel first entry of DocumentTypes; it maps to
	// "no type filter" on the wire.
	TypeFilterAll = "全部素材"

	// ChatNetworkErrorReply is appended verbatim as an assistant message when
	// a chat request fails at the network layer.
	ChatNetworkErrorReply = "网络错误，请检查后端。"

	ChatWelcomeTitle = "你好！我是你的 AI 助教。"
)

// DocumentTypes drives the type filter in the list sidebar. Order matters:
// the first entry clears the filter.
var DocumentTypes = []string{
	TypeFilterAll, "论证段", "开头段", "结尾段", "名言金句", "人物素材",
}

// Themes drives the theme filter. Selecting the active theme again clears it.
var Themes = []string{
	"青春奋斗", "家国情怀", "科技创新", "责任奉献", "苦难挫折", "文化传承",
	"榜样力量", "公平正义", "生态环保", "多元包容", "人性光辉", "网络时代",
	"自我认知", "人生理想", "工匠精神", "文化自信", "责任担当", "审美境界",
}

// PresetQuestions are the mode-scoped suggestion chips shown while a mode's
// history is still empty. Sending one is identical to typing it.
var PresetQuestions = map[entity.Mode][]string{
	entity.ModeAnalyze: {
		"分析这段素材的论证逻辑",
		"这段素材适合用在什么主题的作文里？",
		"帮我提炼3个适用的人物精神关键词",
		"指出这段文字在修辞上的亮点",
	},
	entity.ModeRewrite: {
		"把这段话改写成排比句，增强气势",
		"模仿这个风格写一段关于‘坚持’的开头",
		"用这段素材作为论据，写一个论证段落",
		"基于此素材出两道作文题目",
	},
	entity.ModeGeneral: {
		"帮我把这段素材缩写到100字以内",
		"这段素材有没有相关的反面例子？",
		"翻译成英文",
	},
}
