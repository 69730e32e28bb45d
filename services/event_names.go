package services

import "borapassageiro/api/models"

// Each ad platform has its own event vocabulary. Internal click types map
// through these fixed tables; anything unmapped falls back to the platform's
// generic label.

var facebookEventNames = map[models.EventType]string{
	models.EventClickWhatsApp:  "Lead",
	models.EventClickPlayStore: "ClickPlayStore",
	models.EventClickAppStore:  "ClickAppStore",
}

const facebookFallbackEvent = "CustomEvent"

var googleEventNames = map[models.EventType]string{
	models.EventClickWhatsApp:  "generate_lead",
	models.EventClickPlayStore: "click_playstore",
	models.EventClickAppStore:  "click_appstore",
}

const googleFallbackEvent = "select_content"

var tiktokEventNames = map[models.EventType]string{
	models.EventClickWhatsApp:  "ClickButton",
	models.EventClickPlayStore: "Download",
	models.EventClickAppStore:  "Download",
}

const tiktokFallbackEvent = "ClickButton"

func fbEventName(t models.EventType) string {
	if name, ok := facebookEventNames[t]; ok {
		return name
	}
	return facebookFallbackEvent
}

func gaEventName(t models.EventType) string {
	if name, ok := googleEventNames[t]; ok {
		return name
	}
	return googleFallbackEvent
}

func ttEventName(t models.EventType) string {
	if name, ok := tiktokEventNames[t]; ok {
		return name
	}
	return tiktokFallbackEvent
}
