package suggest

import (
	"suggestbot/command/def"
	"suggestbot/guildstore"
	"suggestbot/handler"
)

// cfgStore is the guild config store shared by every handler in this
// package. It is injected once at startup by RegisterHandlers.
var cfgStore *guildstore.Store

// RegisterHandlers wires the suggestion system's commands, buttons and
// modals into the interaction router.
func RegisterHandlers(store *guildstore.Store) {
	cfgStore = store

	handler.AddCommandHandler(def.SetupCommand.Name, SetupCommandHandler)
	handler.AddCommandHandler(def.SetThresholdCommand.Name, SetThresholdCommandHandler)
	handler.AddCommandHandler(def.ViewConfigCommand.Name, ViewConfigCommandHandler)

	// 审核相关处理器
	handler.AddComponentHandler(approveAction, ApproveButtonHandler)
	handler.AddComponentHandler(denyAction, DenyButtonHandler)
	handler.AddModalHandler(approveModalAction, ApproveNoteModalHandler)
}
