package services

import "math/rand"

var hydrationReminderMessages = []string{
	"Time to hydrate!",
	"Don't forget to drink water!",
	"Stay hydrated - your body will thank you!",
	"Water break time!",
	"Keep up your hydration goals!",
	"Remember to drink water regularly!",
}

func randomReminderMessage() string {
	return hydrationReminderMessages[rand.Intn(len(hydrationReminderMessages))]
}
