package utils

import (
	"github.com/bwmarrin/discordgo"
)

// CanConfigureGuild 检查用户是否有权限配置建议系统
// Manage Server, Administrator, or being the guild owner all qualify.
func CanConfigureGuild(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&(discordgo.PermissionManageServer|discordgo.PermissionAdministrator) != 0 {
		return true
	}
	if guild, err := s.State.Guild(i.GuildID); err == nil && guild.OwnerID == i.Member.User.ID {
		return true
	}
	return false
}

// IsAdministrator reports whether the invoker holds the Administrator
// permission.
func IsAdministrator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// CanManageMessages reports whether the invoker may approve or deny
// suggestions.
func CanManageMessages(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageMessages != 0
}
