package handlers

// Served as-is from /leaderboard; the page pulls live data from
// /api/leaderboard and /api/stats so the backend stays the single source of
// truth for rankings.
const leaderboardPage = `<!DOCTYPE html>
<html>
<head>
    <title>Dr Boogie vs. The Catastrophes of Mikkeli - Leaderboard</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f0f8ff; }
        .container { max-width: 800px; margin: 0 auto; }
        h1 { color: #2c3e50; text-align: center; }
        .difficulty-tabs { margin: 20px 0; text-align: center; }
        .tab { padding: 10px 20px; margin: 0 5px; background: #3498db; color: white; border: none; cursor: pointer; border-radius: 5px; }
        .tab.active { background: #2980b9; }
        .leaderboard { background: white; border-radius: 10px; padding: 20px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .score-item { display: flex; justify-content: space-between; padding: 10px; border-bottom: 1px solid #eee; }
        .rank { font-weight: bold; color: #e74c3c; }
        .team-name { flex-grow: 1; margin-left: 10px; }
        .score { color: #27ae60; font-weight: bold; }
        .back-button { background: #95a5a6; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; margin: 20px 0; display: inline-block; }
        .stats { background: white; border-radius: 10px; padding: 20px; margin-bottom: 20px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    </style>
</head>
<body>
    <div class="container">
        <h1>🎮 Dr Boogie Leaderboard 🏆</h1>

        <div class="stats" id="stats">
            <h3>Game Statistics</h3>
            <div id="statsContent">Loading...</div>
        </div>

        <div class="difficulty-tabs">
            <button class="tab active" onclick="loadLeaderboard('all')">All Difficulties</button>
            <button class="tab" onclick="loadLeaderboard('easy')">Easy</button>
            <button class="tab" onclick="loadLeaderboard('medium')">Medium</button>
            <button class="tab" onclick="loadLeaderboard('hard')">Hard</button>
        </div>

        <div class="leaderboard" id="leaderboard">
            Loading leaderboard...
        </div>

        <a href="/" class="back-button">← Back to Game</a>
    </div>

    <script>
        async function loadLeaderboard(difficulty = 'all') {
            document.querySelectorAll('.tab').forEach(tab => tab.classList.remove('active'));
            if (window.event && window.event.target) {
                window.event.target.classList.add('active');
            }

            try {
                const response = await fetch('/api/leaderboard?difficulty=' + difficulty + '&limit=20');
                const data = await response.json();

                const leaderboard = document.getElementById('leaderboard');
                if (data.leaderboard.length === 0) {
                    leaderboard.innerHTML = '<p>No scores yet for this difficulty!</p>';
                    return;
                }

                leaderboard.innerHTML = data.leaderboard.map(entry =>
                    '<div class="score-item">' +
                        '<span class="rank">#' + entry.rank + '</span>' +
                        '<span class="team-name">' + entry.teamName + '</span>' +
                        '<span class="landmarks">' + entry.landmarksSaved + ' landmarks</span>' +
                        '<span class="difficulty">' + entry.difficulty + '</span>' +
                        '<span class="score">' + entry.score + ' pts</span>' +
                    '</div>'
                ).join('');
            } catch (error) {
                document.getElementById('leaderboard').innerHTML = '<p>Error loading leaderboard</p>';
            }
        }

        async function loadStats() {
            try {
                const response = await fetch('/api/stats');
                const data = await response.json();

                document.getElementById('statsContent').innerHTML =
                    '<p><strong>Total Games:</strong> ' + data.totalGames + '</p>' +
                    '<p><strong>Average Score:</strong> ' + data.averageScore + '</p>' +
                    '<p><strong>Highest Score:</strong> ' + data.highestScore + '</p>' +
                    '<p><strong>Total Landmarks Saved:</strong> ' + data.totalLandmarksSaved + '</p>';
            } catch (error) {
                document.getElementById('statsContent').innerHTML = '<p>Error loading stats</p>';
            }
        }

        loadLeaderboard('all');
        loadStats();
    </script>
</body>
</html>
`
