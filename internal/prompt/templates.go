package prompt

// VisionAnalysis drives the first look at an uploaded craft photo: a short
// description plus three interview questions for the artisan.
var VisionAnalysis = Template{
	Name:   "vision-analysis",
	Fields: []string{"category"},
	Text: `Analyze this image of a handmade craft, which the artisan has identified as being in the '{category}' category.
- First, briefly describe the object you see in a single sentence.
- Second, based on what you see and the category, generate a list of three simple, warm, and open-ended questions that invite the artisan to share the personal story, cultural background, and making process behind the piece.
- Format the output as JSON with the keys "description" and "questions".`,
}

// MasterStoryteller turns the vision description plus the artisan's answers
// into the full marketing package. The model must answer with a raw JSON
// object carrying every key listed below.
var MasterStoryteller = Template{
	Name:   "master-storyteller",
	Fields: []string{"description", "answers"},
	Text: `You are Kala, an expert storyteller and marketing assistant for artisans with deep knowledge of traditional crafts worldwide. Your tone is warm, evocative, and authentic. Your goal is to weave the artisan's personal story into a compelling narrative while providing detailed cultural and artistic context.

You will be given the initial AI description of a piece and the artisan's personal answers to a few questions.

**Initial AI Description:**
{description}

**Artisan's Own Words:**
{answers}

**Your Task:**
Based on ALL of the information above, generate a complete marketing package. Analyze the craft deeply to identify the specific traditional art form, its regional and cultural origins, the techniques and materials used, and the unique selling points that differentiate this piece.

Your final output MUST be only the raw JSON object, without any markdown formatting. The JSON object must have these exact keys:

- "instagram_post": An engaging Instagram post (max 600 characters) that tells the story with relevant hashtags including the specific art form name.
- "product_description": A concise e-commerce product description (max 120 words) covering the art form classification, regional origin and cultural significance, traditional techniques and materials, key features, and a brief connection to the artisan's story.
- "product_features": An array of exactly 5 concise product features, each 1-3 words maximum, verifiable from the image and description (e.g. "Pure Cotton", "Hand-Thrown", "Natural Dyes"). Avoid generic features.
- "art_classification": An object with the keys "art_form_name", "region_of_origin", "cultural_significance", "traditional_techniques" (array), "primary_materials" (array), and "historical_period".
- "marketplace_suggestions": An array of 3-4 objects, each with "name", "url" (direct link to the platform landing page), and "reason" explaining why the platform suits this craft. Consider Etsy, Novica, Amazon Handmade, ArtFire, Aftcra, Folksy, Bonanza.
- "pricing_guidance": An object with "suggested_price_range" (USD, based on complexity and time), "pricing_factors" (at most 3), and "market_positioning" (Premium/Mid-range/Affordable with a 1-2 word reason).
- "video_script": A professional 30-second Instagram Reel script as an object with "title", "style", "bg_music_suggestion", and "timeline": an array of exactly three segments for "0-5s", "6-15s", and "16-30s". Each segment has "time", "visuals" (object with "camera_shot", "action", "b_roll_suggestion") and "audio" (object with "voiceover", "sfx"). The first segment introduces the art form, the second shows the artisan's hands or intricate details with their personal story, the third reveals the finished piece with a call to action naming the art form.

Remember to use the specific traditional art form name throughout, include regional and cultural context, keep pricing realistic for the craft's complexity, and ensure all content respects and celebrates the cultural heritage. Generate product_features only from what can be verified in the description provided.`,
}

// PricingEstimate requests a two-key price-range JSON object in INR and USD.
// The reply is forwarded to the caller unparsed.
var PricingEstimate = Template{
	Name:   "pricing-estimate",
	Fields: []string{"category", "description", "hours"},
	Text: `Act as an expert appraiser for handmade artisanal goods.
Given the following item details:
- Category: {category}
- Description: {description}
- Hours to make: {hours}

Provide a fair market price range in both INR and USD.
Your output MUST be a JSON object with two keys: "price_range_inr" and "price_range_usd".
Example: {"price_range_inr": "₹2500 - ₹4000", "price_range_usd": "$30 - $50"}`,
}

// Translation asks for cultural adaptation, not a literal rendering.
var Translation = Template{
	Name:   "translation",
	Fields: []string{"target_language", "context", "text"},
	Text: `You are an expert translator specializing in marketing copy for artisanal goods.
Translate the following text into {target_language}.
The context of the text is a "{context}".
Do not just translate literally. Culturally adapt the tone and phrasing to be compelling for an audience in that region.

Text to translate:
---
{text}
---

Your output should be ONLY the translated text.`,
}

// Mockup instructs the image model to isolate the craft and composite it into
// a newly generated scene.
var Mockup = Template{
	Name:   "mockup",
	Fields: []string{"context"},
	Text: `Analyze the user-provided image to identify the primary subject, which is an artisanal craft.
Your task is to perform an advanced image editing operation in one shot:
1. Intelligently isolate the primary subject from its original background.
2. Generate a new, clean, photorealistic background scene based on the following context: '{context}'.
3. Realistically place the isolated subject into the new scene. Integrate it seamlessly, paying close attention to accurate lighting, shadows, and perspective that match the new background.
4. The final output should be ONLY the newly generated image, with the subject perfectly integrated. Do not include any text or borders.`,
}

// SmokeTest is the fixed health-probe prompt behind GET /test-ai.
const SmokeTest = "In one sentence, what makes handmade crafts special?"
