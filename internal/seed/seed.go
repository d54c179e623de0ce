// Package seed populates the database with sample PRDs for a given user.
// It is meant for local development and for exercising the list, update,
// and delete flows against realistic data.
package seed

import (
	"context"
	"fmt"
	"time"

	"clearprd/internal/models"

	"gorm.io/gorm"
)

// fixture is one sample PRD to insert.
type fixture struct {
	Idea    string
	Content string
}

var samplePRDs = []fixture{
	{"E-commerce marketplace for handmade crafts", "# Handmade Crafts Marketplace\n\n## Overview\nA platform connecting artisans with buyers seeking unique handmade items.\n\n## Features\n- Seller storefronts\n- Payment processing\n- Reviews and ratings\n- Search and filtering"},
	{"Fitness tracking app with social features", "# FitSocial App\n\n## Overview\nTrack workouts and compete with friends.\n\n## Features\n- Workout logging\n- Progress photos\n- Leaderboards\n- Challenge system"},
	{"Recipe sharing platform with AI suggestions", "# AI Recipe Hub\n\n## Overview\nShare recipes and get AI-powered meal suggestions.\n\n## Features\n- Recipe database\n- AI meal planning\n- Grocery lists\n- Nutritional analysis"},
	{"Task management tool for remote teams", "# RemoteTask Pro\n\n## Overview\nManage projects and tasks for distributed teams.\n\n## Features\n- Kanban boards\n- Time tracking\n- Team chat\n- File sharing"},
	{"Language learning app with native speakers", "# LinguaConnect\n\n## Overview\nPractice languages with native speakers worldwide.\n\n## Features\n- Video calls\n- Text chat\n- Flashcards\n- Progress tracking"},
	{"Personal finance dashboard", "# FinanceHub\n\n## Overview\nTrack spending, budgets, and investments.\n\n## Features\n- Bank sync\n- Budget categories\n- Investment tracking\n- Bill reminders"},
	{"Event planning and ticketing platform", "# EventMaster\n\n## Overview\nCreate, manage, and sell tickets for events.\n\n## Features\n- Event creation\n- Ticket sales\n- Attendee management\n- Analytics"},
	{"Online learning platform for coding", "# CodeAcademy Pro\n\n## Overview\nInteractive coding courses with real projects.\n\n## Features\n- Video lessons\n- Code editor\n- Project challenges\n- Certificates"},
	{"Pet care and veterinary booking app", "# PetCare Plus\n\n## Overview\nManage pet health and book vet appointments.\n\n## Features\n- Health records\n- Vet booking\n- Medication reminders\n- Pet profiles"},
	{"Sustainable shopping recommendation engine", "# EcoShop Guide\n\n## Overview\nFind eco-friendly alternatives to everyday products.\n\n## Features\n- Product scanner\n- Sustainability scores\n- Alternative suggestions\n- Carbon tracking"},
	{"Mental health journaling app", "# MindSpace Journal\n\n## Overview\nDaily journaling with mood tracking and insights.\n\n## Features\n- Guided prompts\n- Mood analytics\n- Meditation timer\n- Privacy focused"},
	{"Freelancer portfolio and invoicing tool", "# FreelanceHub\n\n## Overview\nShowcase work and manage freelance business.\n\n## Features\n- Portfolio builder\n- Invoice generation\n- Time tracking\n- Client management"},
	{"Book club management platform", "# BookClub Central\n\n## Overview\nOrganize and run virtual book clubs.\n\n## Features\n- Reading schedules\n- Discussion forums\n- Video meetings\n- Book recommendations"},
	{"Home automation control center", "# SmartHome Hub\n\n## Overview\nCentral control for all smart home devices.\n\n## Features\n- Device dashboard\n- Automation rules\n- Voice control\n- Energy monitoring"},
	{"Travel itinerary planner with AI", "# TripGenius\n\n## Overview\nAI-powered travel planning and booking.\n\n## Features\n- Itinerary builder\n- Flight/hotel search\n- Local recommendations\n- Budget tracking"},
	{"Music collaboration platform", "# BandMate Online\n\n## Overview\nCollaborate on music with artists worldwide.\n\n## Features\n- Cloud DAW\n- Version control\n- Real-time collab\n- Marketplace"},
	{"Neighborhood community app", "# NeighborNet\n\n## Overview\nConnect with your local community.\n\n## Features\n- Local marketplace\n- Event calendar\n- Safety alerts\n- Service recommendations"},
	{"Habit tracking with gamification", "# HabitQuest\n\n## Overview\nBuild habits through game mechanics.\n\n## Features\n- Daily streaks\n- Achievement badges\n- Friend competitions\n- Reward system"},
	{"Restaurant reservation and ordering system", "# DineEasy\n\n## Overview\nBook tables and order ahead at restaurants.\n\n## Features\n- Table booking\n- Menu browsing\n- Pre-ordering\n- Loyalty rewards"},
	{"Job interview preparation platform", "# InterviewPro\n\n## Overview\nPractice interviews with AI feedback.\n\n## Features\n- Mock interviews\n- AI analysis\n- Question bank\n- Resume review"},
}

// Run inserts the sample PRDs for the user identified by email. The user must
// already exist. Timestamps are staggered one hour apart so newest-first
// ordering is visible in listings. Returns the number of records inserted.
func Run(ctx context.Context, db *gorm.DB, email string) (int, error) {
	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return 0, fmt.Errorf("user with email %q not found (sign up first): %w", email, err)
	}

	baseTime := time.Now().UTC()

	prds := make([]models.PRD, 0, len(samplePRDs))
	for i, sample := range samplePRDs {
		prds = append(prds, models.PRD{
			UserID:    user.ID,
			Idea:      sample.Idea,
			Content:   sample.Content,
			CreatedAt: baseTime.Add(-time.Duration(i) * time.Hour),
		})
	}

	if err := db.WithContext(ctx).Create(&prds).Error; err != nil {
		return 0, fmt.Errorf("inserting sample PRDs: %w", err)
	}

	return len(prds), nil
}
