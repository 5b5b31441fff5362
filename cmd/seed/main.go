package main

import (
	"log"
	"os"
	"time"

	"my-diary-be/internal/constant"
	"my-diary-be/internal/model"
	"my-diary-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds a demo user with a few days of diary data so the client has
// something to render against a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	userId := os.Getenv("SEED_USER_ID")
	if userId == "" {
		userId = "demo-user"
	}

	color.Cyan("Seeding demo diaries for user %q...", userId)

	diaries := []model.DiaryEntry{
		{
			UserId:  userId,
			Date:    time.Now().AddDate(0, 0, -2),
			Content: "오랜만에 친구들과 한강에서 자전거를 탔다. 날씨가 좋아서 기분이 좋았다.",
			Mood:    "happy",
		},
		{
			UserId:  userId,
			Date:    time.Now().AddDate(0, 0, -1),
			Content: "하루 종일 비가 와서 집에서 책을 읽었다.",
			Mood:    "calm",
		},
	}

	for _, d := range diaries {
		var existing model.DiaryEntry
		if err := db.Where("user_id = ? AND date = ?", d.UserId, d.Date.Format("2006-01-02")).
			First(&existing).Error; err == nil {
			color.Yellow("Diary for %s already exists, skipping...", d.Date.Format("2006-01-02"))
			continue
		}

		if err := db.Create(&d).Error; err != nil {
			color.Red("Error creating diary for %s: %v", d.Date.Format("2006-01-02"), err)
			continue
		}
		color.Green("Created diary %d for %s", d.Id, d.Date.Format("2006-01-02"))

		people := []model.Person{
			{DiaryId: d.Id, Name: "민수", Relation: "친구"},
		}
		for _, p := range people {
			if err := db.Create(&p).Error; err != nil {
				color.Red("Error creating person: %v", err)
			}
		}

		turns := []model.AIQueryLog{
			{DiaryId: d.Id, Content: constant.SeedGreeting, WrittenBy: "ai"},
			{DiaryId: d.Id, Content: "오늘 가장 기억에 남는 순간은 무엇이었나요?", WrittenBy: "ai"},
		}
		for _, t := range turns {
			if err := db.Create(&t).Error; err != nil {
				color.Red("Error creating chat turn: %v", err)
			}
		}
	}

	color.Cyan("Seeding completed!")
}
