package main

import (
	"context"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	auth "github.com/sundayfc/club-sync/pkg/auth"
	fsdb "github.com/sundayfc/club-sync/repos/fsdb"
	notify "github.com/sundayfc/club-sync/repos/notify"

	admin "github.com/sundayfc/club-sync/services/admin"
	attendance "github.com/sundayfc/club-sync/services/attendance"
	matches "github.com/sundayfc/club-sync/services/matches"
	members "github.com/sundayfc/club-sync/services/members"
	notices "github.com/sundayfc/club-sync/services/notices"
	relay "github.com/sundayfc/club-sync/services/relay"
	stats "github.com/sundayfc/club-sync/services/stats"
	teams "github.com/sundayfc/club-sync/services/teams"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v\n", err)
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	credentialsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	port := os.Getenv("PORT")
	allowOrigins := os.Getenv("CORS_HOSTS")
	resendKey := os.Getenv("RESEND_KEY")
	mailFrom := os.Getenv("NOTICE_MAIL_FROM")
	mailTo := os.Getenv("NOTICE_MAIL_TO")

	credentialsOption := option.WithCredentialsJSON([]byte(credentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, projectID, credentialsOption)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	store := fsdb.NewStore(firestoreClient)
	notifyService := notify.NewService(store, resendKey, mailFrom, mailTo)

	membersService := members.NewMembersService(store)
	teamsService := teams.NewTeamsService(store)
	matchesService := matches.NewMatchesService(store, notifyService)
	attendanceService := attendance.NewAttendanceService(store, notifyService)
	statsService := stats.NewStatsService(store)
	noticesService := notices.NewNoticesService(store, notifyService)
	adminService := admin.NewAdminService(store, statsService, matchesService)
	relayService := relay.NewRelayService(store, statsService)

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowOrigins, ",")
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Access-Control-Allow-Origin"}

	router := gin.Default()
	router.Use(cors.New(config))

	api := router.Group("/api/v1")
	api.Use(auth.AuthMiddleware(firebaseApp))

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.AuthMiddleware(firebaseApp), auth.AdminOnly())

	relayRouter := router.Group("/relay/v1")

	members.NewHTTPHandler(members.HTTPOptions{
		Service: membersService,
		Router:  api.Group("/members"),
	})

	teams.NewHTTPHandler(teams.HTTPOptions{
		Service: teamsService,
		Router:  api.Group("/teams"),
	})

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service:      matchesService,
		Router:       api.Group("/matches"),
		EventsRouter: api.Group("/match-events"),
	})

	attendance.NewHTTPHandler(attendance.HTTPOptions{
		Service:           attendanceService,
		Router:            api.Group("/attendances"),
		AssignmentsRouter: api.Group("/team-assignments"),
	})

	stats.NewHTTPHandler(stats.HTTPOptions{
		Service: statsService,
		Router:  api.Group("/statistics"),
	})

	notices.NewHTTPHandler(notices.HTTPOptions{
		Service:             noticesService,
		Router:              api.Group("/notices"),
		NotificationsRouter: api.Group("/notifications"),
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service: adminService,
		Router:  adminRouter,
	})

	relay.NewHTTPHandler(relay.HTTPOptions{
		Service: relayService,
		Router:  relayRouter,
	})

	log.Fatal(router.Run(":" + port))
}
