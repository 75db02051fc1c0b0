package main

import (
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/BurntSushi/toml"
	"github.com/go-kit/kit/endpoint"
	"github.com/spf13/cobra"

	"github.com/bobinette/photopilot/auth"
	authhttp "github.com/bobinette/photopilot/auth/http"
	authservices "github.com/bobinette/photopilot/auth/services"
	"github.com/bobinette/photopilot/bolt"
	"github.com/bobinette/photopilot/gin"
	"github.com/bobinette/photopilot/inmem"
	"github.com/bobinette/photopilot/jwt"
	"github.com/bobinette/photopilot/log"
	"github.com/bobinette/photopilot/project"
	projecthttp "github.com/bobinette/photopilot/project/http"
	projectservices "github.com/bobinette/photopilot/project/services"
)

var (
	// flags
	env string

	// logger
	logger log.Logger
)

type Configuration struct {
	Addr string `toml:"addr"`
	Auth struct {
		Key string `toml:"key"`
	} `toml:"auth"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Dev struct {
		BypassAuth bool `toml:"bypass_auth"`
		MockDB     bool `toml:"mock_db"`
		UserID     int  `toml:"user_id"`
	} `toml:"dev"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "web",
	Short: "Start the PhotoPilot web server",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := ioutil.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			return
		}

		var cfg Configuration
		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			return
		}

		// Create logger
		logger = log.New(env)

		// The development switches never run in prod, no matter what the
		// configuration file says.
		if env == "prod" && (cfg.Dev.BypassAuth || cfg.Dev.MockDB) {
			logger.Fatal("bypass_auth and mock_db are refused in prod")
		}

		// Create encoder
		key, err := jwt.LoadKey(cfg.Auth.Key)
		if err != nil {
			logger.Fatal("could not read key file:", err)
		}
		tokenEncoder := jwt.NewEncodeDecoder(key)

		// Create repositories
		var userRepository auth.UserRepository
		var projectRepository project.ProjectRepository
		var mediaRepository project.MediaRepository
		if cfg.Dev.MockDB {
			logger.Print("mock_db enabled, serving the in-memory fixtures")
			users := inmem.NewUserRepository()
			projects := inmem.NewProjectRepository()
			media := inmem.NewMediaRepository()
			if err := inmem.LoadFixtures(users, projects, media); err != nil {
				logger.Fatal("could not load fixtures:", err)
			}
			userRepository, projectRepository, mediaRepository = users, projects, media
		} else {
			boltDriver := &bolt.Driver{}
			if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
				logger.Fatal("could not open db:", err)
			}
			defer boltDriver.Close()
			userRepository = bolt.NewUserRepository(boltDriver)
			projectRepository = bolt.NewProjectRepository(boltDriver)
			mediaRepository = bolt.NewMediaRepository(boltDriver)
		}

		// Create auth middleware
		var authMW endpoint.Middleware
		if cfg.Dev.BypassAuth {
			userID := cfg.Dev.UserID
			if userID == 0 {
				userID = 1
			}
			logger.Print("bypass_auth enabled, all requests run as user ", userID)
			authMW = jwt.StaticMiddleware(userID)
		} else {
			authMW = jwt.Middleware(key)
		}

		// Create services
		userService := authservices.NewUserService(userRepository, tokenEncoder)
		projectService := projectservices.NewProjectService(projectRepository, mediaRepository, userRepository)
		mediaService := projectservices.NewMediaService(mediaRepository, projectRepository)

		// Register endpoints
		srv := gin.NewServer(env)
		authhttp.RegisterUserEndpoints(srv, userService, authMW)
		projecthttp.RegisterProjectEndpoints(srv, projectService, authMW)
		projecthttp.RegisterMediaEndpoints(srv, mediaService, authMW)

		addr := cfg.Addr
		if addr == "" {
			addr = ":1705"
		}
		logger.Print("server started, listening on ", addr)
		logger.Fatal(http.ListenAndServe(addr, srv.Handler()))
	},
}
