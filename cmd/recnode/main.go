package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"net"
	"os"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/cluster"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/config"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/db"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/repository"
)

// Un nodo de recomendación corre el pipeline completo de UN usuario por
// task: entrena su random forest, filtra el pool y puntúa. Las filas del
// usuario llegan en el task; el catálogo lo lee cada nodo de Mongo y lo
// mantiene cacheado en memoria.
func main() {
	cfg := config.Load()
	mdb := db.ConnectMongo(cfg)

	addr := os.Getenv("REC_NODE_ADDR")
	if addr == "" {
		addr = ":9001"
	}

	nodeID := os.Getenv("NODE_ID")
	if nodeID == "" {
		nodeID = "?"
	}

	log.Printf("[REC NODE %s] escuchando en %s", nodeID, addr)

	movieRepo := repository.NewMovieRepository(mdb)
	general := recommender.NewGeneralModel(cfg.GeneralModelPath)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Println("accept error:", err)
			continue
		}
		go handleConn(nodeID, conn, movieRepo, general)
	}
}

func handleConn(nodeID string, conn net.Conn, movies *repository.MovieRepository, general *recommender.GeneralModel) {
	defer conn.Close()

	dec := json.NewDecoder(bufio.NewReader(conn))
	var task cluster.RecTask
	if err := dec.Decode(&task); err != nil {
		log.Printf("[REC NODE %s] decode task error: %v", nodeID, err)
		return
	}

	if task.Ping {
		_ = json.NewEncoder(conn).Encode(&cluster.RecResponse{Username: task.Username})
		return
	}

	log.Printf("[REC NODE %s] tarea recibida: user=%s modelo=%s filas=%d",
		nodeID, task.Username, task.ModelType, len(task.Rows))

	start := time.Now()

	resp := cluster.RecResponse{Username: task.Username}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	catalog, err := movies.GetCatalog(ctx)
	if err == nil {
		resp.Items, err = recommender.RunPipeline(
			catalog, task.Rows, task.Unrated, task.ModelType, task.NumRecs, task.Filters, general)
	}
	if err != nil {
		log.Printf("[REC NODE %s] pipeline de %s falló: %v", nodeID, task.Username, err)
		resp.Error = err.Error()
		resp.ErrKind = cluster.ErrorKind(err)
	} else {
		log.Printf("[REC NODE %s] completado: user=%s items=%d tiempo=%s",
			nodeID, task.Username, len(resp.Items), time.Since(start))
	}

	if err := json.NewEncoder(conn).Encode(&resp); err != nil {
		log.Printf("[REC NODE %s] encode resp error: %v", nodeID, err)
	}
}
