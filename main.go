package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "github.com/kcortes765/STRUCT-CALC/internal/auth"
	analysis "github.com/kcortes765/STRUCT-CALC/internal/calc/analysis"
	batch "github.com/kcortes765/STRUCT-CALC/internal/calc/batch"
	bolts "github.com/kcortes765/STRUCT-CALC/internal/calc/bolts"
	combos "github.com/kcortes765/STRUCT-CALC/internal/calc/combos"
	recommend "github.com/kcortes765/STRUCT-CALC/internal/calc/recommend"
	report "github.com/kcortes765/STRUCT-CALC/internal/calc/report"
	verify "github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	catalog "github.com/kcortes765/STRUCT-CALC/internal/catalog"
	history "github.com/kcortes765/STRUCT-CALC/internal/history"
	repo "github.com/kcortes765/STRUCT-CALC/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file, using environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	historyH := &history.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(5, 20)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	catalogH := &catalog.Handler{}
	api.HandleFunc("/catalog/sections", catalogH.ListSections).Methods("GET")
	api.HandleFunc("/catalog/sections/types", catalogH.ListSectionTypes).Methods("GET")
	api.HandleFunc("/catalog/sections/search", catalogH.SearchSections).Methods("GET")
	api.HandleFunc("/catalog/sections/filter", catalogH.AdvancedSearch).Methods("GET")
	api.HandleFunc("/catalog/sections/{id}", catalogH.GetSection).Methods("GET")
	api.HandleFunc("/catalog/materials", catalogH.ListMaterials).Methods("GET")
	api.HandleFunc("/catalog/materials/{id}", catalogH.GetMaterial).Methods("GET")

	combosH := &combos.Handler{}
	api.HandleFunc("/combos/calc", combosH.Calc).Methods("POST")
	api.HandleFunc("/combos/{method}", combosH.List).Methods("GET")

	verifyH := &verify.Handler{}
	api.HandleFunc("/verify/beam", verifyH.Beam).Methods("POST")
	api.HandleFunc("/verify/column", verifyH.Column).Methods("POST")
	api.HandleFunc("/verify/frame", verifyH.Frame).Methods("POST")

	boltsH := &bolts.Handler{}
	api.HandleFunc("/bolts/shear", boltsH.Shear).Methods("POST")
	api.HandleFunc("/bolts/tension", boltsH.Tension).Methods("POST")
	api.HandleFunc("/bolts/combined", boltsH.Combined).Methods("POST")
	api.HandleFunc("/bolts/bearing", boltsH.Bearing).Methods("POST")
	api.HandleFunc("/bolts/block-shear", boltsH.BlockShear).Methods("POST")
	api.HandleFunc("/bolts/grades", boltsH.ListGrades).Methods("GET")
	api.HandleFunc("/bolts/diameters", boltsH.ListDiameters).Methods("GET")

	analysisH := &analysis.Handler{}
	api.HandleFunc("/analyze/beam", analysisH.Beam).Methods("POST")
	api.HandleFunc("/analyze/column", analysisH.Column).Methods("POST")

	recommendH := &recommend.Handler{}
	api.HandleFunc("/recommend/sections", recommendH.Suggest).Methods("POST")
	api.HandleFunc("/recommend/compare", recommendH.Compare).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")

	batchH := &batch.Handler{}
	secureApi.HandleFunc("/batch/beam", batchH.Beam).Methods("POST")
	secureApi.HandleFunc("/batch/beam/import", batchH.ImportBeam).Methods("POST")

	reportH := &report.Handler{}
	secureApi.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
