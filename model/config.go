package model

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Commands Commands `mapstructure:"commands"`
	Suggest  Suggest  `mapstructure:"suggest"`
}

// Commands 对应 "commands" 部分
type Commands struct {
	// Allowguilds limits slash command registration to these guilds.
	// When empty, commands are registered globally.
	Allowguilds []string `mapstructure:"allowguilds"`
}

// Suggest 对应 "suggest" 部分
type Suggest struct {
	GuildConfigFile string `mapstructure:"guild_config_file"`
	Database        string `mapstructure:"database"`
}
