package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"jpreader/config"
	"jpreader/deinflect"
	"jpreader/furigana"
	"jpreader/logger"
	"jpreader/metrics"
	"jpreader/morphology"
	"jpreader/tagdict"
	"jpreader/tokenize"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Println("failed to load config:", err)
		return
	}
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)
	collect := metrics.Slog{Log: log}

	tz, err := tokenize.New(cfg.Tokenizer.Dict)
	if err != nil {
		fmt.Println("failed to init tokenizer:", err)
		return
	}

	strategies := []deinflect.Strategy{
		deinflect.NewTokenStrategy(tz, log, collect),
	}
	if cfg.Dictionary.JMdictPath != "" {
		dict, err := tagdict.LoadJMdict(cfg.Dictionary.JMdictPath)
		if err != nil {
			log.Warn("JMdict unavailable, rule-chain strategy disabled", "error", err)
		} else {
			log.Info("JMdict loaded", "words", dict.Len())
			strategies = append(strategies, deinflect.NewRuleStrategy(dict))
		}
	}
	deinflector := deinflect.New(log, collect, strategies...)
	pipeline := furigana.NewPipeline(tz, log, collect)
	morph := morphology.NewAnalyzer(tz, log, collect)

	const text = "秋田県仙北市は市内を流れる入見内川の水位が高まっているため、" +
		"午前8時40分、角館町西長野の283世帯649人に高齢者等避難の情報を出しました。"
	words := []string{"食べていました", "飲まなかった", "tabeteimasu", "高い"}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ft := pipeline.Analyze(ctx, text)
	printJSON("furigana", ft)

	out := map[string]any{"furigana": ft}
	for _, w := range words {
		results := deinflector.Deinflect(ctx, w)
		printJSON("deinflect "+w, results)
		out["deinflect_"+w] = results
		if m := morph.Analyze(ctx, w); m != nil {
			out["morphology_"+w] = m
		}
	}

	id := uuid.NewString()
	if err := logger.DumpJSON(cfg.Dump.Dir, id+"_analysis", out); err != nil {
		log.Warn("failed to write analysis dump", "error", err)
	}
}

func printJSON(label string, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Printf("--- %s ---\n%s\n", label, b)
}
