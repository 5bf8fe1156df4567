package render

const recipeStyle = `    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            line-height: 1.6;
        }
        h1 {
            color: #2c3e50;
            border-bottom: 2px solid #eee;
            padding-bottom: 10px;
        }
        h2 {
            color: #34495e;
            margin-top: 30px;
        }
        ul, ol {
            padding-left: 20px;
        }
        li {
            margin: 8px 0;
        }
        .back-link {
            display: inline-block;
            margin-bottom: 20px;
            color: #3498db;
            text-decoration: none;
        }
        .back-link:hover {
            text-decoration: underline;
        }
    </style>
`

const indexStyle = `    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            line-height: 1.6;
        }
        h1 {
            color: #2c3e50;
            border-bottom: 2px solid #eee;
            padding-bottom: 10px;
        }
        .search-container {
            margin: 20px 0;
        }
        .search-input {
            width: 100%;
            padding: 10px;
            font-size: 16px;
            border: 2px solid #ddd;
            border-radius: 5px;
            box-sizing: border-box;
        }
        .search-input:focus {
            outline: none;
            border-color: #3498db;
        }
        .recipe-list {
            list-style: none;
            padding: 0;
        }
        .recipe-item {
            margin: 15px 0;
            padding: 15px;
            background-color: #f8f9fa;
            border-radius: 5px;
            transition: background-color 0.2s;
        }
        .recipe-item:hover {
            background-color: #e9ecef;
        }
        .recipe-link {
            color: #2c3e50;
            text-decoration: none;
            font-size: 1.2em;
            font-weight: bold;
        }
        .recipe-link:hover {
            color: #3498db;
        }
        .no-results {
            text-align: center;
            color: #666;
            padding: 20px;
            font-style: italic;
        }
    </style>
`

// searchScript filters #recipeList items by case-insensitive title substring
const searchScript = `
    <script>
        const searchInput = document.getElementById('searchInput');
        const recipeList = document.getElementById('recipeList');
        const noResults = document.getElementById('noResults');
        const recipeItems = recipeList.getElementsByClassName('recipe-item');

        searchInput.addEventListener('input', function() {
            const searchTerm = this.value.toLowerCase();
            let hasResults = false;

            Array.from(recipeItems).forEach(item => {
                const recipeTitle = item.querySelector('.recipe-link').textContent.toLowerCase();
                if (recipeTitle.includes(searchTerm)) {
                    item.style.display = '';
                    hasResults = true;
                } else {
                    item.style.display = 'none';
                }
            });

            noResults.style.display = hasResults ? 'none' : 'block';
        });
    </script>
`
