package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"suggestbot/command"
	"suggestbot/config"
	"suggestbot/db"
	"suggestbot/guildstore"
	"suggestbot/handler/suggest"
)

var dg *discordgo.Session

// Start 启动机器人
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置文件时出错: %v", err)
		return
	}

	if err := db.InitDB(config.Cfg.Suggest.Database); err != nil {
		log.Printf("初始化数据库时出错: %v", err)
		return
	}

	backend, err := guildstore.NewFileBackend(config.Cfg.Suggest.GuildConfigFile)
	if err != nil {
		log.Printf("初始化配置存储时出错: %v", err)
		return
	}
	store, err := guildstore.New(backend)
	if err != nil {
		log.Printf("加载服务器配置时出错: %v", err)
		return
	}

	// 注册 suggest 处理程序
	suggest.RegisterHandlers(store)

	// 使用提供的机器人令牌创建一个新的 Discord 会话
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("创建 Discord 会话时出错, %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	registerCommands(dg)

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// registerCommands creates the slash commands, per guild when an
// allowlist is configured and globally otherwise.
func registerCommands(s *discordgo.Session) {
	guilds := config.Cfg.Commands.Allowguilds
	if len(guilds) == 0 {
		guilds = []string{""}
	}
	for _, guildID := range guilds {
		for _, cmd := range command.AllCommands {
			_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}
}

// GetSession 返回当前的 Discord 会话
func GetSession() *discordgo.Session {
	return dg
}
